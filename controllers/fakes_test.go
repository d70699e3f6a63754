package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/raflyryhnsyh/ApotekQu-sub001/auth"
	"github.com/raflyryhnsyh/ApotekQu-sub001/middlewares"
	"github.com/raflyryhnsyh/ApotekQu-sub001/models"
	"github.com/raflyryhnsyh/ApotekQu-sub001/service"
	"github.com/raflyryhnsyh/ApotekQu-sub001/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var testUserID = uuid.MustParse("6f1c3c9e-1111-4a5b-9c7d-000000000001")

type fakeProvider struct {
	session    *auth.Session
	signInErr  error
	signInCall int
	signedOut  []string
	refreshErr error
}

func (f *fakeProvider) SignInWithPassword(_ context.Context, _, _ string) (*auth.Session, error) {
	f.signInCall++
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	return f.session, nil
}

func (f *fakeProvider) SignOut(_ context.Context, token string) error {
	f.signedOut = append(f.signedOut, token)
	return nil
}

func (f *fakeProvider) Refresh(context.Context, string) (*auth.Session, error) {
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	return f.session, nil
}

func (f *fakeProvider) Verify(context.Context, string) (*utils.SessionClaims, error) {
	return nil, utils.ErrInvalidToken
}

type fakeProfiles struct {
	profile models.Profile
	err     error
}

func (f fakeProfiles) ProfileByID(context.Context, uuid.UUID) (models.Profile, error) {
	return f.profile, f.err
}

type fakeSuppliers struct {
	rows []models.Supplier
	err  error
}

func (f fakeSuppliers) ListSuppliers(context.Context) ([]models.Supplier, error) {
	return f.rows, f.err
}

type fakePenyediaProduk struct {
	row models.PenyediaProduk
	err error
}

func (f fakePenyediaProduk) PenyediaProdukByID(context.Context, uint) (models.PenyediaProduk, error) {
	return f.row, f.err
}

type fakeOrders struct {
	list      []models.PurchaseOrder
	detail    []models.DetailPORow
	err       error
	createErr error
	lines     []service.OrderLine
	userID    uuid.UUID
}

func (f *fakeOrders) ListPurchaseOrders(context.Context) ([]models.PurchaseOrder, error) {
	return f.list, f.err
}

func (f *fakeOrders) DetailPurchaseOrder(context.Context, uint) ([]models.DetailPORow, error) {
	return f.detail, f.err
}

func (f *fakeOrders) CreatePurchaseOrder(_ context.Context, userID uuid.UUID, lines []service.OrderLine) (models.PurchaseOrder, error) {
	f.userID = userID
	f.lines = lines
	if f.createErr != nil {
		return models.PurchaseOrder{}, f.createErr
	}
	return models.PurchaseOrder{ID: 7, NomorPO: "PO-2026-000007", UserID: userID, Status: models.StatusDiproses}, nil
}

type fakeBarangDiterima struct {
	inserted  []models.DetailBarangDiterima
	nextID    uint
	updateErr error
}

func (f *fakeBarangDiterima) CreateDetailBarangDiterima(_ context.Context, row *models.DetailBarangDiterima) error {
	row.ID = f.nextID
	f.inserted = append(f.inserted, *row)
	return nil
}

func (f *fakeBarangDiterima) UpdateNomorBatch(_ context.Context, id uint, nomorBatch string) (models.DetailBarangDiterima, error) {
	if f.updateErr != nil {
		return models.DetailBarangDiterima{}, f.updateErr
	}
	return models.DetailBarangDiterima{ID: id, NomorBatch: &nomorBatch}, nil
}

type fakeKatalog struct {
	rows []models.KatalogRow
	err  error
}

func (f fakeKatalog) KatalogPengadaan(context.Context) ([]models.KatalogRow, error) {
	return f.rows, f.err
}

type published struct {
	topic string
	key   string
}

type fakePublisher struct{ sent []published }

func (f *fakePublisher) Publish(topic, key string, _ interface{}) error {
	f.sent = append(f.sent, published{topic: topic, key: key})
	return nil
}

func (f *fakePublisher) Close() error { return nil }

// withUser meniru AuthRequired untuk handler yang butuh user di context.
func withUser(c *gin.Context) {
	c.Set(middlewares.CtxUserID, testUserID)
	c.Set(middlewares.CtxAccessToken, "access-token")
	c.Next()
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

