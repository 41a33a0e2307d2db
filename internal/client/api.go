// ABOUTME: Typed endpoint methods and payload types for the Seed Store API
// ABOUTME: Covers auth, catalog, recommendations, cart, orders, and contact

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MadhumithraA1426/seed-store-cli/internal/session"
)

// Product is a catalog entry as returned by the backend
type Product struct {
	ID              string   `json:"_id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	Category        string   `json:"category"`
	ImageURL        string   `json:"imageUrl"`
	WaterConditions string   `json:"waterConditions"`
	Sunlight        string   `json:"sunlight"`
	GrowingSeason   string   `json:"growingSeason"`
	Stock           int      `json:"stock"`
	SoilType        []string `json:"soilType"`
	Climate         []string `json:"climate"`
}

// CartItem is a single line in the cart
type CartItem struct {
	ID       string  `json:"_id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is the authenticated user's cart
type Cart struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

// OrderItem is a single line in a placed order
type OrderItem struct {
	ID       string  `json:"_id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is a placed order with its delivery status
type Order struct {
	ID              string          `json:"_id"`
	Status          string          `json:"status"`
	DeliveryDate    string          `json:"deliveryDate"`
	Items           []OrderItem     `json:"items"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	User            *session.User   `json:"user,omitempty"`
}

// ShippingAddress is the pay-on-delivery destination for an order
type ShippingAddress struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// ContactMessage is a message sent through the contact form
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// RegisterRequest is the registration payload, profile plus optional
// gardening preferences
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	SoilType        string `json:"soilType,omitempty"`
	Climate         string `json:"climate,omitempty"`
	WaterConditions string `json:"waterConditions,omitempty"`
}

// AuthResponse is the {user, token} envelope returned by login and register
type AuthResponse struct {
	User  *session.User `json:"user"`
	Token string        `json:"token"`
}

// Session converts the envelope into an installable session
func (r *AuthResponse) Session() session.Session {
	return session.Session{User: r.User, Token: r.Token}
}

// RecommendationQuery are the growing-condition filters forwarded to the
// backend; empty fields are omitted
type RecommendationQuery struct {
	SoilType        string
	Climate         string
	WaterConditions string
}

// Login calls POST /auth/login
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp AuthResponse
	if err := c.Post(ctx, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register calls POST /auth/register
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.Post(ctx, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Products calls GET /products
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.Get(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Recommendations calls GET /recommendations with the given filters
func (c *Client) Recommendations(ctx context.Context, q RecommendationQuery) ([]Product, error) {
	params := url.Values{}
	if q.SoilType != "" {
		params.Set("soilType", q.SoilType)
	}
	if q.Climate != "" {
		params.Set("climate", q.Climate)
	}
	if q.WaterConditions != "" {
		params.Set("waterConditions", q.WaterConditions)
	}

	path := "/recommendations"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var products []Product
	if err := c.Get(ctx, path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ProductForm carries the fields for product create/update. Image is
// optional; when set it is uploaded as a multipart file part.
type ProductForm struct {
	Name            string
	Description     string
	Price           float64
	Category        string
	WaterConditions string
	Sunlight        string
	GrowingSeason   string
	Stock           int
	SoilType        []string
	Climate         []string
	Image           io.Reader
	ImageName       string
}

// encode writes the form as multipart, array fields JSON-encoded the way
// the backend expects them
func (f *ProductForm) encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	fields := map[string]string{
		"name":            f.Name,
		"description":     f.Description,
		"price":           strconv.FormatFloat(f.Price, 'f', -1, 64),
		"category":        f.Category,
		"waterConditions": f.WaterConditions,
		"sunlight":        f.Sunlight,
		"growingSeason":   f.GrowingSeason,
		"stock":           strconv.Itoa(f.Stock),
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	for name, values := range map[string][]string{"soilType": f.SoilType, "climate": f.Climate} {
		encoded, err := json.Marshal(values)
		if err != nil {
			return nil, "", err
		}
		if err := mw.WriteField(name, string(encoded)); err != nil {
			return nil, "", err
		}
	}

	if f.Image != nil {
		name := f.ImageName
		if name == "" {
			name = "image"
		}
		part, err := mw.CreateFormFile("image", name)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, f.Image); err != nil {
			return nil, "", err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return buf, mw.FormDataContentType(), nil
}

// CreateProduct calls POST /products (admin, multipart)
func (c *Client) CreateProduct(ctx context.Context, form *ProductForm) (*Product, error) {
	buf, contentType, err := form.encode()
	if err != nil {
		return nil, fmt.Errorf("failed to encode product form: %w", err)
	}

	var product Product
	if err := c.do(ctx, http.MethodPost, "/products", buf, contentType, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct calls PUT /products/:id (admin, multipart)
func (c *Client) UpdateProduct(ctx context.Context, id string, form *ProductForm) (*Product, error) {
	buf, contentType, err := form.encode()
	if err != nil {
		return nil, fmt.Errorf("failed to encode product form: %w", err)
	}

	var product Product
	if err := c.do(ctx, http.MethodPut, "/products/"+id, buf, contentType, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct calls DELETE /products/:id (admin)
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.Delete(ctx, "/products/"+id, nil)
}

// Cart calls GET /cart
func (c *Client) Cart(ctx context.Context) (*Cart, error) {
	var cart Cart
	if err := c.Get(ctx, "/cart", &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddToCart calls POST /cart/add
func (c *Client) AddToCart(ctx context.Context, productID string, quantity int) error {
	body := map[string]interface{}{"productId": productID, "quantity": quantity}
	return c.Post(ctx, "/cart/add", body, nil)
}

// UpdateCartItem calls PUT /cart/update/:itemId
func (c *Client) UpdateCartItem(ctx context.Context, itemID string, quantity int) error {
	body := map[string]int{"quantity": quantity}
	return c.Put(ctx, "/cart/update/"+itemID, body, nil)
}

// RemoveCartItem calls DELETE /cart/remove/:itemId
func (c *Client) RemoveCartItem(ctx context.Context, itemID string) error {
	return c.Delete(ctx, "/cart/remove/"+itemID, nil)
}

// PlaceOrder calls POST /orders with the shipping address
func (c *Client) PlaceOrder(ctx context.Context, addr ShippingAddress) (*Order, error) {
	body := map[string]ShippingAddress{"shippingAddress": addr}
	var order Order
	if err := c.Post(ctx, "/orders", body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// MyOrders calls GET /orders/my-orders
func (c *Client) MyOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.Get(ctx, "/orders/my-orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// AllOrders calls GET /orders/all (admin)
func (c *Client) AllOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.Get(ctx, "/orders/all", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus calls PUT /orders/:id/status (admin)
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	body := map[string]string{"status": status}
	return c.Put(ctx, "/orders/"+orderID+"/status", body, nil)
}

// Contact calls POST /contact
func (c *Client) Contact(ctx context.Context, msg ContactMessage) error {
	return c.Post(ctx, "/contact", msg, nil)
}
