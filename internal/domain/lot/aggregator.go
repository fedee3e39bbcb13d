package lot

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DailyRow fila cruda del almacén para el tablero diario: lote + nombre e imagen del producto.
type DailyRow struct {
	LotID       int64
	ProductID   int64
	Exp         string
	QtyBack     int
	QtyDisplay  int
	ProductName string
	ImageURL    *string
}

// ClassifiedLot lote con su estado derivado, listo para presentación.
type ClassifiedLot struct {
	LotID      int64
	ProductID  int64
	Exp        string
	QtyBack    int
	QtyDisplay int
	Status     Status
}

// ProductGroup lotes de un producto agrupados para el tablero diario.
type ProductGroup struct {
	ProductID   int64
	ProductName string
	ImageURL    *string
	Lots        []ClassifiedLot
}

// Sections tablero particionado: cada estado con los grupos que tienen al menos
// un lote en ese estado, recortados al subconjunto correspondiente.
type Sections map[Status][]ProductGroup

// GroupByProduct clasifica cada fila respecto a today, agrupa por producto,
// ordena los lotes de cada grupo por exp ascendente (desempate por id) y los
// grupos por nombre de producto (colación Unicode; los nombres pueden venir
// en cualquier idioma).
func GroupByProduct(rows []DailyRow, today string) []ProductGroup {
	byProduct := make(map[int64]*ProductGroup)
	order := make([]int64, 0)

	for _, r := range rows {
		status := Classify(Snapshot{Exp: r.Exp, QtyBack: r.QtyBack, QtyDisplay: r.QtyDisplay}, today)
		cl := ClassifiedLot{
			LotID:      r.LotID,
			ProductID:  r.ProductID,
			Exp:        r.Exp,
			QtyBack:    r.QtyBack,
			QtyDisplay: r.QtyDisplay,
			Status:     status,
		}
		g, ok := byProduct[r.ProductID]
		if !ok {
			g = &ProductGroup{ProductID: r.ProductID, ProductName: r.ProductName, ImageURL: r.ImageURL}
			byProduct[r.ProductID] = g
			order = append(order, r.ProductID)
		}
		g.Lots = append(g.Lots, cl)
	}

	groups := make([]ProductGroup, 0, len(order))
	for _, id := range order {
		g := byProduct[id]
		sort.SliceStable(g.Lots, func(i, j int) bool {
			if g.Lots[i].Exp != g.Lots[j].Exp {
				return g.Lots[i].Exp < g.Lots[j].Exp
			}
			return g.Lots[i].LotID < g.Lots[j].LotID
		})
		groups = append(groups, *g)
	}

	coll := collate.New(language.Und)
	sort.SliceStable(groups, func(i, j int) bool {
		if c := coll.CompareString(groups[i].ProductName, groups[j].ProductName); c != 0 {
			return c < 0
		}
		return groups[i].ProductID < groups[j].ProductID
	})
	return groups
}

// PartitionSections arma la vista por estado: un producto aparece en la sección
// de un estado solo si tiene al menos un lote con ese estado, y dentro de la
// sección sus Lots contienen únicamente los lotes coincidentes. Un producto con
// lotes repartidos en varios estados aparece una vez por sección relevante.
func PartitionSections(groups []ProductGroup) Sections {
	sections := make(Sections, len(SectionOrder))
	for _, status := range SectionOrder {
		var out []ProductGroup
		for _, g := range groups {
			var matching []ClassifiedLot
			for _, l := range g.Lots {
				if l.Status == status {
					matching = append(matching, l)
				}
			}
			if len(matching) == 0 {
				continue
			}
			out = append(out, ProductGroup{
				ProductID:   g.ProductID,
				ProductName: g.ProductName,
				ImageURL:    g.ImageURL,
				Lots:        matching,
			})
		}
		sections[status] = out
	}
	return sections
}
