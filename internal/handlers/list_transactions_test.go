package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/qr-drive-cashier/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTransactionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txs := []models.Transaction{
		{ID: "tx-2", Type: "Transfer", Status: models.StatusCompleted, Amount: 150000},
		{ID: "tx-1", Type: "Transfer", Status: models.StatusPending},
	}

	mockSvc := NewMockTransactionLister(ctrl)
	mockSvc.EXPECT().List(gomock.Any()).Return(txs)

	rr := httptest.NewRecorder()
	NewListTransactionsHandler(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/transactions", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var got []models.Transaction
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, txs, got)
}

func TestListTransactionsHandler_EmptyIsArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTransactionLister(ctrl)
	mockSvc.EXPECT().List(gomock.Any()).Return(nil)

	rr := httptest.NewRecorder()
	NewListTransactionsHandler(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/transactions", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
}
