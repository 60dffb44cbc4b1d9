package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCountersAppearInExposition(t *testing.T) {
	before := testutil.ToFloat64(ModalOpens.WithLabelValues("Master Forge"))
	ModalOpens.WithLabelValues("Master Forge").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(ModalOpens.WithLabelValues("Master Forge")))

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "contact_modal_opens_total")
}
