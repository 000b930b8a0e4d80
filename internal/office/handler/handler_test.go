package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/madhawadiyanath/daycare-core/internal/office/service"
	"github.com/madhawadiyanath/daycare-core/internal/testutil"
)

func setupOfficeRouter() *gin.Engine {
	services := service.NewServices(
		testutil.NewFakeIncomeStore(),
		testutil.NewFakeExpenseStore(),
		testutil.NewFakeEnrollmentStore(),
		testutil.NewFakeEventStore(),
	)
	h := NewHandlers(services)

	r := testutil.SetupRouter()
	r.POST("/incomes", h.Finance.CreateIncome)
	r.POST("/expenses", h.Finance.CreateExpense)
	r.GET("/finance/summary", h.Finance.Summary)
	r.POST("/enrollments", h.Enrollment.Create)
	r.PUT("/enrollments/:id/status", h.Enrollment.Decide)
	return r
}

func TestFinanceSummaryEndpoint(t *testing.T) {
	r := setupOfficeRouter()

	if w := testutil.DoRequest(r, "POST", "/incomes", map[string]interface{}{
		"source": "tuition", "amount": "250.50",
	}); w.Code != http.StatusCreated {
		t.Fatalf("income create failed: %d %s", w.Code, w.Body.String())
	}
	if w := testutil.DoRequest(r, "POST", "/expenses", map[string]interface{}{
		"payee": "grocer", "amount": "50.25",
	}); w.Code != http.StatusCreated {
		t.Fatalf("expense create failed: %d %s", w.Code, w.Body.String())
	}

	w := testutil.DoRequest(r, "GET", "/finance/summary", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	resp := testutil.ParseResponse(w)
	data, ok := resp["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected summary object, got %v", resp["data"])
	}
	if data["totalIncome"] != "250.5" {
		t.Fatalf("expected totalIncome 250.5, got %v", data["totalIncome"])
	}
	if data["balance"] != "200.25" {
		t.Fatalf("expected balance 200.25, got %v", data["balance"])
	}
}

func TestCreateIncomeMissingSource(t *testing.T) {
	r := setupOfficeRouter()

	w := testutil.DoRequest(r, "POST", "/incomes", map[string]interface{}{
		"amount": "10.00",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	resp := testutil.ParseResponse(w)
	if resp["message"] != "source is required" {
		t.Fatalf("expected plain field message, got %v", resp["message"])
	}
}

func TestEnrollmentDecisionConflict(t *testing.T) {
	r := setupOfficeRouter()

	w := testutil.DoRequest(r, "POST", "/enrollments", map[string]interface{}{
		"childName": "Maya", "parentName": "Jordan", "startDate": "2026-10-01T00:00:00Z",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("enrollment create failed: %d %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	id := resp["data"].(map[string]interface{})["id"].(string)

	if w := testutil.DoRequest(r, "PUT", "/enrollments/"+id+"/status", map[string]interface{}{
		"status": "approved",
	}); w.Code != http.StatusOK {
		t.Fatalf("decision failed: %d %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(r, "PUT", "/enrollments/"+id+"/status", map[string]interface{}{
		"status": "rejected",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on second decision, got %d", w.Code)
	}
	resp = testutil.ParseResponse(w)
	if resp["success"] != false {
		t.Fatalf("expected failure envelope, got %v", resp)
	}
}
