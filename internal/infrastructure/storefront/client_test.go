package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront_checkout/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreds = entities.Credentials{
	CSRFToken: "form-token",
	Cookies:   map[string]string{"sessionid": "abc", "csrftoken": "cookie-token"},
}

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", 2*time.Second)
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body
}

func TestClient_RequestCardPayment(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payments/toss/request/", r.URL.Path)
		assert.Equal(t, "form-token", r.Header.Get("X-CSRFToken"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		cookie, err := r.Cookie("sessionid")
		require.NoError(t, err)
		assert.Equal(t, "abc", cookie.Value)

		body := decodeBody(t, r)
		assert.Equal(t, "pk-1", body["preOrderKey"])
		assert.Equal(t, float64(2000), body["usedPoint"])

		_, _ = io.WriteString(w, `{"success":true,"amount":"48000","orderId":1234,"orderName":"셔츠","successUrl":"/ok/","failUrl":"/fail/"}`)
	})

	ticket, err := c.RequestCardPayment(context.Background(), testCreds, "pk-1", 2000)
	require.NoError(t, err)
	assert.Equal(t, entities.CardPaymentTicket{Amount: 48000, OrderID: "1234", OrderName: "셔츠", SuccessURL: "/ok/", FailURL: "/fail/"}, ticket)
}

func TestClient_RejectedEnvelope(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"success":false,"error":"주문 정보가 만료되었습니다."}`)
	})

	_, err := c.PayWithPoints(context.Background(), testCreds, "pk-1", 5000)
	var se *entities.StorefrontError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "주문 정보가 만료되었습니다.", se.Message)
	assert.Equal(t, http.StatusBadRequest, se.StatusCode)
	assert.True(t, IsRejected(err))
}

func TestClient_TransportFailures(t *testing.T) {
	t.Run("non json", func(t *testing.T) {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "<html>login</html>")
		})
		_, err := c.PayWithPoints(context.Background(), testCreds, "pk-1", 5000)
		require.Error(t, err)
		assert.False(t, IsRejected(err))
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		c := NewClient(srv.URL, time.Second)
		_, err := c.CreateOrder(context.Background(), testCreds, []entities.OrderItem{{ProductID: 1, Quantity: 1}})
		require.Error(t, err)
		assert.False(t, IsRejected(err))
	})

	t.Run("cancelled context", func(t *testing.T) {
		c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"success":true}`)
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := c.PayWithPoints(ctx, testCreds, "pk-1", 5000)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestClient_VirtualAccountFlow(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		switch r.URL.Path {
		case "/orders/virtual/create/":
			assert.Equal(t, "pk-1", body["preOrderKey"])
			_, _ = io.WriteString(w, `{"success":false,"orderId":"77","error":"이미 생성된 주문"}`)
		case "/payments/toss/virtual/request/":
			assert.Equal(t, "77", body["orderId"])
			assert.Equal(t, "홍길동", body["customerName"])
			assert.Equal(t, "NH", body["bank"])
			_, _ = io.WriteString(w, `{"success":true,"bank":"NH","account_number":"123-456","account_holder":"스토어","due_date":"2025-03-04T10:00:00+09:00"}`)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	orderID, err := c.CreateVirtualOrder(context.Background(), testCreds, "pk-1")
	require.NoError(t, err)
	assert.Equal(t, "77", orderID)

	account, err := c.IssueVirtualAccount(context.Background(), testCreds, orderID, "홍길동", "NH")
	require.NoError(t, err)
	assert.Equal(t, "농협은행", account.BankName)
	assert.Equal(t, "123-456", account.AccountNumber)
	assert.Equal(t, "2025.03.04 10:00까지", account.DueDateText)
}

func TestClient_VirtualOrderRejectedWithoutID(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":false}`)
	})
	_, err := c.CreateVirtualOrder(context.Background(), testCreds, "pk-1")
	assert.True(t, IsRejected(err))
}

func TestClient_Orders(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body orderItemsBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Items, 1)
		switch r.URL.Path {
		case "/orders/create/":
			_, _ = io.WriteString(w, `{"success":true,"preOrderKey":"pk-9"}`)
		case "/orders/preorder/":
			_, _ = io.WriteString(w, `{"success":true,"redirectUrl":"/payments/?preOrderKey=pk-9"}`)
		}
	})

	items := []entities.OrderItem{{ProductID: 3, Quantity: 2}}
	key, err := c.CreateOrder(context.Background(), testCreds, items)
	require.NoError(t, err)
	assert.Equal(t, "pk-9", key)

	redirect, err := c.PreOrder(context.Background(), testCreds, items)
	require.NoError(t, err)
	assert.Equal(t, "/payments/?preOrderKey=pk-9", redirect)
}

func TestClient_CartForms(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "form-token", r.PostForm.Get("csrfmiddlewaretoken"))
		switch r.URL.Path {
		case "/carts/update/5/":
			assert.Equal(t, "3", r.PostForm.Get("quantity"))
			w.WriteHeader(http.StatusOK)
		case "/carts/delete/5/":
			w.WriteHeader(http.StatusForbidden)
		}
	})

	require.NoError(t, c.UpdateCartQuantity(context.Background(), testCreds, 5, 3))

	err := c.DeleteCartItem(context.Background(), testCreds, 5)
	var se *entities.StorefrontError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusForbidden, se.StatusCode)
}

func TestFlexString(t *testing.T) {
	var v struct {
		A flexString `json:"a"`
		B flexString `json:"b"`
		C flexString `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":12,"b":"x-1","c":null}`), &v))
	assert.Equal(t, "12", v.A.String())
	assert.Equal(t, int64(12), v.A.Int64())
	assert.Equal(t, "x-1", v.B.String())
	assert.Equal(t, "", v.C.String())
	assert.Equal(t, int64(0), v.B.Int64())
}
