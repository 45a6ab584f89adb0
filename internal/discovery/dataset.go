package discovery

import "github.com/sells-group/outreach-cli/internal/supplier"

func i64(v int64) *int64 { return &v }
func i(v int) *int       { return &v }

// builtinDataset is the default candidate catalog, shipped with the binary.
// A YAML dataset loaded via NewCatalogSourceFromFile takes precedence.
var builtinDataset = Dataset{
	Version: "builtin-2026.1",
	Suppliers: []supplier.Candidate{
		{CompanyName: "Hunan Nutramax Inc.", Email: "sales@nutramax.com.cn", Country: "china", ProductCategory: "Health Supplements", AnnualRevenue: i64(45_000_000), EmployeeCount: i(320), DataSource: "automated_discovery"},
		{CompanyName: "Xi'an Greena Biotech Co.", Email: "export@greenabio.cn", Country: "china", ProductCategory: "Health Supplements", AnnualRevenue: i64(12_500_000), EmployeeCount: i(150), DataSource: "automated_discovery"},
		{CompanyName: "Zhejiang Hengdian Electronics", Email: "intl@hengdian-elec.com", Country: "china", ProductCategory: "Consumer Electronics", AnnualRevenue: i64(380_000_000), EmployeeCount: i(2400), DataSource: "automated_discovery"},
		{CompanyName: "Shenzhen BrightWave Tech Ltd.", Email: "sales@brightwave.cn", Country: "china", ProductCategory: "Consumer Electronics", AnnualRevenue: i64(8_200_000), EmployeeCount: i(95), DataSource: "automated_discovery"},
		{CompanyName: "Himalaya Organics Pvt. Ltd.", Email: "exports@himalayaorganics.in", Country: "india", ProductCategory: "Health Supplements", AnnualRevenue: i64(28_000_000), EmployeeCount: i(410), DataSource: "automated_discovery"},
		{CompanyName: "Jaipur Textile Mills", Email: "sales@jaipurtextiles.in", Country: "india", ProductCategory: "Home Textiles", AnnualRevenue: i64(64_000_000), EmployeeCount: i(1850), DataSource: "automated_discovery"},
		{CompanyName: "Mumbai Spice Traders Co.", Email: "export@mumbaispice.in", Country: "india", ProductCategory: "Specialty Foods", AnnualRevenue: i64(5_600_000), EmployeeCount: i(75), DataSource: "automated_discovery"},
		{CompanyName: "Bayerische Feinmechanik GmbH", Email: "vertrieb@bf-mechanik.de", Country: "germany", ProductCategory: "Precision Tools", AnnualRevenue: i64(145_000_000), EmployeeCount: i(780), DataSource: "automated_discovery"},
		{CompanyName: "Hamburg Naturkost AG", Email: "export@hh-naturkost.de", Country: "germany", ProductCategory: "Specialty Foods", AnnualRevenue: i64(32_000_000), EmployeeCount: i(260), DataSource: "automated_discovery"},
		{CompanyName: "Kyoto Precision Works K.K.", Email: "overseas@kyotoprecision.jp", Country: "japan", ProductCategory: "Precision Tools", AnnualRevenue: i64(1_200_000_000), EmployeeCount: i(4800), DataSource: "automated_discovery"},
		{CompanyName: "Osaka Wellness Foods", Email: "trade@osakawellness.jp", Country: "japan", ProductCategory: "Health Supplements", AnnualRevenue: i64(18_000_000), EmployeeCount: i(140), DataSource: "automated_discovery"},
		{CompanyName: "São Paulo Café Exportadora", Email: "vendas@spcafe.com.br", Country: "brazil", ProductCategory: "Specialty Foods", AnnualRevenue: i64(52_000_000), EmployeeCount: i(620), DataSource: "automated_discovery"},
		{CompanyName: "Hanoi Garment Collective", Email: "sales@hanoigarment.vn", Country: "vietnam", ProductCategory: "Home Textiles", AnnualRevenue: i64(9_800_000), EmployeeCount: i(1100), DataSource: "automated_discovery"},
		{CompanyName: "Monterrey Industrial SA", Email: "ventas@mtyindustrial.mx", Country: "mexico", ProductCategory: "Precision Tools", AnnualRevenue: i64(76_000_000), EmployeeCount: i(940), DataSource: "automated_discovery"},
		{CompanyName: "Seoul BioHealth Co.", Email: "global@seoulbiohealth.kr", Country: "south_korea", ProductCategory: "Health Supplements", AnnualRevenue: i64(210_000_000), EmployeeCount: i(1300), DataSource: "automated_discovery"},
	},
}
