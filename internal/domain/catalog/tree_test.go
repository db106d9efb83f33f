package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tutu-catalog/internal/domain/catalog"
	"github.com/jhoicas/tutu-catalog/internal/domain/entity"
)

func parent(id int64, name string) entity.Product {
	return entity.Product{ID: id, Category: entity.CategoryHat, Gender: entity.GenderMen, Type: "beanie", Name: name}
}

func child(id, parentID int64, color string) entity.Product {
	p := parent(id, "hijo")
	p.ParentID = &parentID
	p.Color = color
	return p
}

func TestBuildFamilies_AgrupaHijosBajoSuPadre(t *testing.T) {
	rows := []entity.Product{
		parent(1, "Classic Cap"),
		child(2, 1, "rojo"),
		child(3, 1, "azul"),
		parent(4, "Fedora"),
	}

	families := catalog.BuildFamilies(rows)
	require.Len(t, families, 2, "deben salir dos familias")

	assert.Equal(t, int64(1), families[0].Parent.ID)
	require.Len(t, families[0].Children, 2)
	assert.Equal(t, int64(4), families[1].Parent.ID)
	assert.Empty(t, families[1].Children)

	// Propiedad de completitud: todo hijo cuelga de la raíz correcta y toda raíz no tiene padre.
	for _, f := range families {
		assert.Nil(t, f.Parent.ParentID, "toda raíz debe tener ParentID nil")
		for _, c := range f.Children {
			require.NotNil(t, c.ParentID)
			assert.Equal(t, f.Parent.ID, *c.ParentID, "el hijo debe colgar de su propia raíz")
		}
	}
}

func TestBuildFamilies_DescartaHijoCuyoPadreQuedoFiltrado(t *testing.T) {
	// El padre id=1 no está en el conjunto (lo excluyó el filtro): su hijo se
	// descarta en silencio, nunca se promueve a raíz.
	rows := []entity.Product{
		child(2, 1, "rojo"),
		parent(4, "Fedora"),
	}

	families := catalog.BuildFamilies(rows)
	require.Len(t, families, 1)
	assert.Equal(t, int64(4), families[0].Parent.ID)
	assert.Empty(t, families[0].Children, "el hijo huérfano del filtro no debe aparecer")
}

func TestBuildFamilies_RespetaOrdenDeAparicionDeRaices(t *testing.T) {
	rows := []entity.Product{
		parent(7, "Fedora"),
		parent(2, "Classic Cap"),
		child(9, 2, "verde"),
	}

	families := catalog.BuildFamilies(rows)
	require.Len(t, families, 2)
	assert.Equal(t, int64(7), families[0].Parent.ID, "las raíces salen en orden de primera aparición")
	assert.Equal(t, int64(2), families[1].Parent.ID)
}

func TestBuildFamilies_VacioDevuelveVacio(t *testing.T) {
	assert.Empty(t, catalog.BuildFamilies(nil))
}
