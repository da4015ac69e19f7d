package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/papelsur/cartera-api/internal/domain"
)

func TestGetCatalogosGestion(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/v1/gestiones/catalogos", nil)

	GetCatalogosGestion()(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	// La respuesta se decodifica con el mismo codificador del paquete.
	var respuesta struct {
		TiposContacto []string            `json:"tipos_contacto"`
		Resultados    map[string][]string `json:"resultados"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &respuesta))

	assert.ElementsMatch(t, domain.TiposContacto, respuesta.TiposContacto)
	assert.Len(t, respuesta.Resultados, len(domain.ResultadosGestion))
	assert.Contains(t, respuesta.Resultados["Contacto efectivo"], "Promesa de pago")
}
