package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"

	"github.com/king0ffire/inventory-service/internal/inventory/domain"
)

// Mock InventoryRepository
type mockRepo struct {
	mu     sync.Mutex
	nextID uint
	items  map[uint]*domain.Inventory

	findAllErr error
	filterErr  error
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: make(map[uint]*domain.Inventory)}
}

func (m *mockRepo) Create(ctx context.Context, inventory *domain.Inventory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	inventory.ID = m.nextID
	clone := *inventory
	m.items[inventory.ID] = &clone
	return nil
}

func (m *mockRepo) FindByID(ctx context.Context, id uint) (*domain.Inventory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return nil, &domain.NotFoundError{ID: id}
	}
	clone := *item
	return &clone, nil
}

func (m *mockRepo) FindAll(ctx context.Context) ([]domain.Inventory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findAllErr != nil {
		return nil, m.findAllErr
	}
	out := make([]domain.Inventory, 0, len(m.items))
	for id := uint(1); id <= m.nextID; id++ {
		if item, ok := m.items[id]; ok {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (m *mockRepo) FindByFilter(ctx context.Context, filter domain.Filter) ([]domain.Inventory, error) {
	if m.filterErr != nil {
		return nil, m.filterErr
	}
	all, err := m.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var out []domain.Inventory
	for _, item := range all {
		if filter.Name != nil && item.Name != *filter.Name {
			continue
		}
		if filter.Quantity != nil && item.Quantity != *filter.Quantity {
			continue
		}
		if filter.RestockLevel != nil && item.RestockLevel != *filter.RestockLevel {
			continue
		}
		if filter.Condition != nil && item.Condition != *filter.Condition {
			continue
		}
		if filter.RestockingAvailable != nil && item.RestockingAvailable != *filter.RestockingAvailable {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (m *mockRepo) Update(ctx context.Context, inventory *domain.Inventory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *inventory
	m.items[inventory.ID] = &clone
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

func newTestRouter() (*mux.Router, *mockRepo) {
	repo := newMockRepo()
	handler := NewInventoryHandler(repo, nil)
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router, repo
}

func doRequest(router *mux.Router, method, target string, body []byte, contentType string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func inventoryPayload(name string, quantity, restockLevel int, condition string) []byte {
	payload, _ := json.Marshal(map[string]interface{}{
		"name":          name,
		"quantity":      quantity,
		"restock_level": restockLevel,
		"condition":     condition,
	})
	return payload
}

func createInventory(t *testing.T, router *mux.Router, name string, quantity, restockLevel int, condition string) domain.Inventory {
	t.Helper()

	rec := doRequest(router, "POST", basePath, inventoryPayload(name, quantity, restockLevel, condition), "application/json")
	if rec.Code != http.StatusCreated {
		t.Fatalf("could not create test inventory: status %d, body %s", rec.Code, rec.Body.String())
	}

	var created domain.Inventory
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid create response: %v", err)
	}
	return created
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestIndex(t *testing.T) {
	router, _ := newTestRouter()

	rec := doRequest(router, "GET", "/", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Inventory REST API Service") {
		t.Errorf("expected service banner, got %s", rec.Body.String())
	}
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter()

	rec := doRequest(router, "GET", "/health", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid health body: %v", err)
	}
	if body.Status != 200 || body.Message != "Healthy" {
		t.Errorf("unexpected health payload: %+v", body)
	}
}

func TestCreateInventory(t *testing.T) {
	router, _ := newTestRouter()

	rec := doRequest(router, "POST", basePath, inventoryPayload("widget", 7, 3, "NEW"), "application/json")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	location := rec.Header().Get("Location")
	if location == "" {
		t.Fatal("expected Location header")
	}

	var created domain.Inventory
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid create response: %v", err)
	}
	if created.Name != "widget" || created.Quantity != 7 || created.RestockLevel != 3 || created.Condition != domain.ConditionNew {
		t.Errorf("unexpected created record: %+v", created)
	}
	if !created.RestockingAvailable {
		t.Error("expected restocking_available to default to true")
	}

	// Fetching the Location must return an identical body
	followUp := doRequest(router, "GET", location, nil, "")
	if followUp.Code != http.StatusOK {
		t.Fatalf("GET on Location returned %d", followUp.Code)
	}
	if followUp.Body.String() != rec.Body.String() {
		t.Errorf("Location body differs:\ncreate: %s\nget:    %s", rec.Body.String(), followUp.Body.String())
	}
}

func TestCreateInventory_WrongMediaType(t *testing.T) {
	router, repo := newTestRouter()

	rec := doRequest(router, "POST", basePath, inventoryPayload("widget", 7, 3, "NEW"), "application/x-www-form-urlencoded")
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415, got %d", rec.Code)
	}
	if len(repo.items) != 0 {
		t.Error("expected no record to be created")
	}
}

func TestCreateInventory_NoContentType(t *testing.T) {
	router, repo := newTestRouter()

	rec := doRequest(router, "POST", basePath, nil, "")
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415, got %d", rec.Code)
	}
	if len(repo.items) != 0 {
		t.Error("expected no record to be created")
	}
}

func TestCreateInventory_ValidationErrors(t *testing.T) {
	router, _ := newTestRouter()

	cases := []struct {
		name    string
		payload string
	}{
		{"missing name", `{"quantity":1,"restock_level":1,"condition":"NEW"}`},
		{"missing quantity", `{"name":"widget","restock_level":1,"condition":"NEW"}`},
		{"unknown condition", `{"name":"widget","quantity":1,"restock_level":1,"condition":"BROKEN"}`},
		{"wrong quantity type", `{"name":"widget","quantity":"lots","restock_level":1,"condition":"NEW"}`},
		{"not json", `{{{`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(router, "POST", basePath, []byte(tc.payload), "application/json")
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}

			body := decodeError(t, rec)
			if body.StatusCode != http.StatusBadRequest {
				t.Errorf("expected status_code 400 in body, got %d", body.StatusCode)
			}
		})
	}
}

func TestGetInventory_NotFound(t *testing.T) {
	router, _ := newTestRouter()

	rec := doRequest(router, "GET", basePath+"/0", nil, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	body := decodeError(t, rec)
	if !strings.Contains(body.Message, "was not found") {
		t.Errorf("expected message to contain 'was not found', got %q", body.Message)
	}
}

func TestListInventory(t *testing.T) {
	router, _ := newTestRouter()
	for i := 0; i < 5; i++ {
		createInventory(t, router, fmt.Sprintf("item-%d", i), i, 1, "NEW")
	}

	rec := doRequest(router, "GET", basePath, nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var listed []domain.Inventory
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("invalid list body: %v", err)
	}
	if len(listed) != 5 {
		t.Errorf("expected 5 records, got %d", len(listed))
	}
}

func TestQueryByQuantity(t *testing.T) {
	router, _ := newTestRouter()

	// Ten records, quantities cycling 1..3: filtering by the first record's
	// quantity must return exactly the matching subset
	var created []domain.Inventory
	for i := 0; i < 10; i++ {
		created = append(created, createInventory(t, router, fmt.Sprintf("item-%d", i), i%3+1, 1, "NEW"))
	}

	target := created[0].Quantity
	expected := 0
	for _, item := range created {
		if item.Quantity == target {
			expected++
		}
	}

	rec := doRequest(router, "GET", fmt.Sprintf("%s?quantity=%d", basePath, target), nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var listed []domain.Inventory
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("invalid list body: %v", err)
	}
	if len(listed) != expected {
		t.Errorf("expected %d records, got %d", expected, len(listed))
	}
	for _, item := range listed {
		if item.Quantity != target {
			t.Errorf("record %d has quantity %d, want %d", item.ID, item.Quantity, target)
		}
	}
}

func TestQueryByNameAndCondition(t *testing.T) {
	router, _ := newTestRouter()
	createInventory(t, router, "widget", 5, 1, "NEW")
	createInventory(t, router, "widget", 5, 1, "USED")
	createInventory(t, router, "gizmo", 5, 1, "NEW")

	rec := doRequest(router, "GET", basePath+"?name=widget&condition=NEW", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var listed []domain.Inventory
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("invalid list body: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected the AND of both filters to match 1 record, got %d", len(listed))
	}
	if listed[0].Name != "widget" || listed[0].Condition != domain.ConditionNew {
		t.Errorf("unexpected record: %+v", listed[0])
	}
}

func TestQueryByRestockingAvailable(t *testing.T) {
	router, _ := newTestRouter()
	first := createInventory(t, router, "widget", 5, 1, "NEW")
	createInventory(t, router, "gizmo", 5, 1, "NEW")

	// Flip one record
	rec := doRequest(router, "PUT", fmt.Sprintf("%s/%d/start_restock", basePath, first.ID), nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("start_restock failed: %d", rec.Code)
	}

	rec = doRequest(router, "GET", basePath+"?restocking_available=false", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var listed []domain.Inventory
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("invalid list body: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != first.ID {
		t.Errorf("expected only the restocking record, got %+v", listed)
	}
}

func TestQueryWithBadParameter(t *testing.T) {
	router, _ := newTestRouter()

	rec := doRequest(router, "GET", basePath+"?quantity=lots", nil, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestQueryLookupFailure(t *testing.T) {
	router, repo := newTestRouter()
	createInventory(t, router, "fido", 1, 1, "NEW")

	// Inject a validation failure into the lookup path
	repo.filterErr = &domain.DataValidationError{Kind: domain.WrongType, Message: "bad lookup"}

	rec := doRequest(router, "GET", basePath+"?name="+url.QueryEscape("fido"), nil, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUpdateInventory(t *testing.T) {
	router, _ := newTestRouter()
	created := createInventory(t, router, "widget", 5, 1, "NEW")

	rec := doRequest(router, "PUT", fmt.Sprintf("%s/%d", basePath, created.ID),
		inventoryPayload("widget", 105, 1, "NEW"), "application/json")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var updated domain.Inventory
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("invalid update body: %v", err)
	}
	if updated.Quantity != 105 {
		t.Errorf("expected quantity 105, got %d", updated.Quantity)
	}
	if updated.ID != created.ID {
		t.Errorf("id changed on update: got %d, want %d", updated.ID, created.ID)
	}
}

func TestUpdateInventory_NotFound(t *testing.T) {
	router, repo := newTestRouter()

	rec := doRequest(router, "PUT", basePath+"/2000", inventoryPayload("widget", 1, 1, "NEW"), "application/json")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if len(repo.items) != 0 {
		t.Error("expected nothing to be mutated")
	}
}

func TestUpdateInventory_WrongMediaType(t *testing.T) {
	router, _ := newTestRouter()
	created := createInventory(t, router, "widget", 5, 1, "NEW")

	rec := doRequest(router, "PUT", fmt.Sprintf("%s/%d", basePath, created.ID),
		inventoryPayload("widget", 105, 1, "NEW"), "text/plain")
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415, got %d", rec.Code)
	}
}

func TestDeleteInventory_Idempotent(t *testing.T) {
	router, _ := newTestRouter()
	created := createInventory(t, router, "widget", 5, 1, "NEW")
	target := fmt.Sprintf("%s/%d", basePath, created.ID)

	rec := doRequest(router, "DELETE", target, nil, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	if rec := doRequest(router, "GET", target, nil, ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected record to be gone, got %d", rec.Code)
	}

	// Deleting again must still answer 204
	rec = doRequest(router, "DELETE", target, nil, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 on second delete, got %d", rec.Code)
	}
}

func TestStartRestock(t *testing.T) {
	router, _ := newTestRouter()
	created := createInventory(t, router, "widget", 5, 1, "NEW")
	target := fmt.Sprintf("%s/%d/start_restock", basePath, created.ID)

	rec := doRequest(router, "PUT", target, nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var updated domain.Inventory
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if updated.RestockingAvailable {
		t.Error("expected restocking_available to be false")
	}

	// The record is already restocking: a second start conflicts
	rec = doRequest(router, "PUT", target, nil, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 on second start, got %d", rec.Code)
	}
}

func TestStopRestock(t *testing.T) {
	router, _ := newTestRouter()
	created := createInventory(t, router, "widget", 5, 1, "NEW")

	// Not restocking yet: stop conflicts
	stopTarget := fmt.Sprintf("%s/%d/stop_restock", basePath, created.ID)
	rec := doRequest(router, "PUT", stopTarget, nil, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}

	startTarget := fmt.Sprintf("%s/%d/start_restock", basePath, created.ID)
	if rec := doRequest(router, "PUT", startTarget, nil, ""); rec.Code != http.StatusOK {
		t.Fatalf("start_restock failed: %d", rec.Code)
	}

	rec = doRequest(router, "PUT", stopTarget, nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var updated domain.Inventory
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if !updated.RestockingAvailable {
		t.Error("expected restocking_available to be true")
	}
}

func TestRestockActions_NotFound(t *testing.T) {
	router, _ := newTestRouter()

	for _, action := range []string{"start_restock", "stop_restock"} {
		rec := doRequest(router, "PUT", basePath+"/0/"+action, nil, "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", action, rec.Code)
		}
	}
}

func TestUnknownRoute(t *testing.T) {
	router, _ := newTestRouter()

	rec := doRequest(router, "GET", "/non_existent_endpoint", nil, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	body := decodeError(t, rec)
	if body.StatusCode != http.StatusNotFound {
		t.Errorf("expected status_code 404, got %d", body.StatusCode)
	}
	if body.Error != "URL Not Found" {
		t.Errorf("expected error 'URL Not Found', got %q", body.Error)
	}
	if body.Message == "" {
		t.Error("expected a message")
	}
}

func TestMethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter()

	rec := doRequest(router, "PUT", basePath, nil, "application/json")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}

	body := decodeError(t, rec)
	if body.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("expected status_code 405, got %d", body.StatusCode)
	}
}

func TestInternalError_GenericBody(t *testing.T) {
	router, repo := newTestRouter()
	repo.findAllErr = errors.New("pq: connection reset")

	rec := doRequest(router, "GET", basePath, nil, "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	body := decodeError(t, rec)
	if body.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status_code 500, got %d", body.StatusCode)
	}
	if strings.Contains(body.Message, "pq:") {
		t.Error("internal detail leaked to the client")
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	router := mux.NewRouter()
	router.Use(RecoveryMiddleware())
	router.HandleFunc("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("unexpected")
	})

	rec := doRequest(router, "GET", "/boom", nil, "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	body := decodeError(t, rec)
	if body.Error != "Internal Server Error" {
		t.Errorf("expected generic error, got %q", body.Error)
	}
	if strings.Contains(body.Message, "unexpected") {
		t.Error("panic value leaked to the client")
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	router := mux.NewRouter()
	router.Use(RequestIDMiddleware())
	router.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := doRequest(router, "GET", "/ping", nil, "")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected a generated X-Request-ID")
	}

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req)
	if rec2.Header().Get("X-Request-ID") != "abc-123" {
		t.Error("expected the caller's X-Request-ID to be preserved")
	}
}
