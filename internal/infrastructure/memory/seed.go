package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/inventory"
)

func day(s string) time.Time {
	t, _ := time.ParseInLocation(time.DateOnly, s, time.Local)
	return t
}

// SeedProducts dataset de demostración usado cuando no hay productos persistidos.
func SeedProducts() []entity.Product {
	products := []entity.Product{
		{ID: "1", Name: "Laptop Dell Inspiron 15", SKU: "DELL-INS-15-001", Category: "Electrónicos", Stock: 25, MinStock: 10, Price: decimal.NewFromInt(2500000), Supplier: "Dell Colombia", LastUpdated: day("2025-01-15"), Description: "Laptop empresarial con procesador Intel i7, 16GB RAM, 512GB SSD"},
		{ID: "2", Name: "Mouse Logitech MX Master 3", SKU: "LOG-MX3-001", Category: "Accesorios", Stock: 5, MinStock: 15, Price: decimal.NewFromInt(350000), Supplier: "Logitech", LastUpdated: day("2025-01-14"), Description: "Mouse inalámbrico ergonómico para profesionales"},
		{ID: "3", Name: "Monitor Samsung 27\" 4K", SKU: "SAM-MON-27-4K", Category: "Electrónicos", Stock: 0, MinStock: 5, Price: decimal.NewFromInt(1800000), Supplier: "Samsung Electronics", LastUpdated: day("2025-01-13"), Description: "Monitor 4K UHD de 27 pulgadas con tecnología HDR"},
		{ID: "4", Name: "Teclado Mecánico Corsair K95", SKU: "COR-K95-RGB", Category: "Accesorios", Stock: 18, MinStock: 8, Price: decimal.NewFromInt(650000), Supplier: "Corsair", LastUpdated: day("2025-01-15"), Description: "Teclado mecánico RGB con switches Cherry MX"},
		{ID: "5", Name: "Impresora HP LaserJet Pro", SKU: "HP-LJ-PRO-001", Category: "Oficina", Stock: 12, MinStock: 6, Price: decimal.NewFromInt(1200000), Supplier: "HP Inc.", LastUpdated: day("2025-01-12"), Description: "Impresora láser monocromática para oficina"},
		{ID: "6", Name: "iPhone 15 Pro Max", SKU: "APL-IP15-PMX", Category: "Electrónicos", Stock: 8, MinStock: 5, Price: decimal.NewFromInt(4500000), Supplier: "Apple Colombia", LastUpdated: day("2025-01-16"), Description: "Smartphone premium con chip A17 Pro y cámara de 48MP"},
		{ID: "7", Name: "Disco Duro Externo WD 2TB", SKU: "WDT-EHD-2TB", Category: "Almacenamiento", Stock: 15, MinStock: 10, Price: decimal.NewFromInt(280000), Supplier: "Western Digital", LastUpdated: day("2025-01-15"), Description: "Disco duro externo USB 3.0 de 2TB para respaldo de datos"},
		{ID: "8", Name: "Router TP-Link AC1200", SKU: "TPL-RT-AC1200", Category: "Redes", Stock: 22, MinStock: 8, Price: decimal.NewFromInt(180000), Supplier: "TP-Link", LastUpdated: day("2025-01-14"), Description: "Router inalámbrico dual banda para hogar y oficina"},
		{ID: "9", Name: "Licencia Windows 11 Pro", SKU: "MSW-W11-PRO", Category: "Software", Stock: 30, MinStock: 5, Price: decimal.NewFromInt(350000), Supplier: "Microsoft Colombia", LastUpdated: day("2025-01-16"), Description: "Licencia digital para Windows 11 Pro"},
		{ID: "10", Name: "Tarjeta Gráfica NVIDIA RTX 4060", SKU: "NV-RTX4060-8G", Category: "Componentes", Stock: 6, MinStock: 3, Price: decimal.NewFromInt(1800000), Supplier: "NVIDIA Partners", LastUpdated: day("2025-01-15"), Description: "Tarjeta gráfica para gaming y diseño con 8GB GDDR6"},
		{ID: "11", Name: "Audífonos Sony WH-1000XM5", SKU: "SON-WH1000XM5", Category: "Accesorios", Stock: 12, MinStock: 7, Price: decimal.NewFromInt(850000), Supplier: "Sony Colombia", LastUpdated: day("2025-01-14"), Description: "Audífonos inalámbricos con cancelación de ruido activa"},
		{ID: "12", Name: "SSD Samsung 970 EVO 1TB", SKU: "SAM-970EVO-1T", Category: "Almacenamiento", Stock: 9, MinStock: 4, Price: decimal.NewFromInt(450000), Supplier: "Samsung Electronics", LastUpdated: day("2025-01-13"), Description: "Unidad de estado sólido NVMe de alta velocidad"},
		{ID: "13", Name: "Proyector Epson EB-S41", SKU: "EPS-EBS41-001", Category: "Oficina", Stock: 4, MinStock: 2, Price: decimal.NewFromInt(950000), Supplier: "Epson Colombia", LastUpdated: day("2025-01-12"), Description: "Proyector LED de 3,300 lúmenes para presentaciones"},
		{ID: "14", Name: "Switch Cisco Catalyst 2960", SKU: "CIS-CAT2960-24", Category: "Redes", Stock: 3, MinStock: 2, Price: decimal.NewFromInt(2200000), Supplier: "Cisco Systems", LastUpdated: day("2025-01-11"), Description: "Switch administrable de 24 puertos Gigabit Ethernet"},
		{ID: "15", Name: "Licencia Adobe Creative Cloud", SKU: "ADB-CC-ANNUAL", Category: "Software", Stock: 18, MinStock: 5, Price: decimal.NewFromInt(720000), Supplier: "Adobe Colombia", LastUpdated: day("2025-01-16"), Description: "Suscripción anual a Adobe Creative Cloud All Apps"},
	}
	for i := range products {
		inventory.Refresh(&products[i])
	}
	return products
}

// SeedMovements movimientos de demostración, del más reciente al más antiguo.
func SeedMovements() []*entity.Movement {
	return []*entity.Movement{
		{ID: "1", ProductID: "1", ProductName: "Laptop Dell Inspiron 15", Type: entity.MovementTypeIn, Quantity: 10, Date: day("2025-01-15"), User: "Juan Pérez", Notes: "Compra mensual", PreviousStock: 15, NewStock: 25},
		{ID: "2", ProductID: "2", ProductName: "Mouse Logitech MX Master 3", Type: entity.MovementTypeOut, Quantity: 8, Date: day("2025-01-14"), User: "María García", Notes: "Venta a cliente corporativo", PreviousStock: 13, NewStock: 5},
		{ID: "3", ProductID: "4", ProductName: "Teclado Mecánico Corsair K95", Type: entity.MovementTypeIn, Quantity: 5, Date: day("2025-01-13"), User: "Carlos López", Notes: "Reposición de stock", PreviousStock: 13, NewStock: 18},
	}
}
