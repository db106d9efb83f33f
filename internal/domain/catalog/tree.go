package catalog

import "github.com/jhoicas/tutu-catalog/internal/domain/entity"

// Family un estilo padre con sus variantes hijas.
type Family struct {
	Parent   entity.Product
	Children []entity.Product
}

// BuildFamilies reagrupa filas planas en árboles padre→hijos.
// Algoritmo canónico en dos pasadas: la primera materializa las raíces
// (ParentID nil) en el orden en que aparecen; la segunda cuelga cada hijo de
// su raíz si esa raíz está en el conjunto. Un hijo cuyo padre quedó fuera del
// resultado (filtrado) se descarta en silencio, nunca se promueve a raíz:
// los filtros aplican a la familia entera a través de la presencia del padre.
func BuildFamilies(rows []entity.Product) []Family {
	families := make([]Family, 0, len(rows))
	index := make(map[int64]int, len(rows))

	for _, p := range rows {
		if !p.IsParent() {
			continue
		}
		index[p.ID] = len(families)
		families = append(families, Family{Parent: p})
	}

	for _, p := range rows {
		if p.IsParent() {
			continue
		}
		if i, ok := index[*p.ParentID]; ok {
			families[i].Children = append(families[i].Children, p)
		}
	}

	return families
}
