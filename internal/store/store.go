package store

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"ecofinds/internal/domain"
	"ecofinds/internal/seed"
	"ecofinds/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

// Store is the single source of truth for session and marketplace state.
// It holds one in-memory snapshot (users, products, session user, cart,
// orders) and synchronizes every mutation to the backing store. Cart and
// orders are partitioned per user id; switching sessions swaps partitions.
//
// Persistence is best-effort: a read failure falls back to the default
// value, a write failure is logged and swallowed. Domain errors (bad
// credentials, duplicate email, checkout preconditions) propagate to the
// caller as sentinel errors from the domain package.
type Store struct {
	mu      sync.Mutex
	backing storage.Backing
	logger  *log.Logger

	users    []domain.User
	products []domain.Product
	user     *domain.User
	cart     []domain.CartItem
	orders   []domain.Order

	lastID int64
}

// ProductInput carries the caller-supplied product fields. ID and SellerID
// are always assigned by the store.
type ProductInput struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Category    domain.Category `json:"category"`
	ImageURL    string          `json:"imageUrl"`
}

// New builds a Store and loads the snapshot from the backing. Absent keys
// fall back to seed data (users, products) or empty defaults, so loading
// never fails; a broken backing degrades to an in-memory-only store.
func New(ctx context.Context, backing storage.Backing, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Store{backing: backing, logger: logger}

	if !s.read(ctx, storage.KeyUsers, &s.users) {
		s.users = seed.Users()
	}
	if !s.read(ctx, storage.KeyProducts, &s.products) {
		s.products = seed.Products()
	}
	var u domain.User
	if s.read(ctx, storage.KeyUser, &u) && u.ID != "" {
		s.user = &u
		s.loadPartitions(ctx, u.ID)
	} else {
		s.cart = []domain.CartItem{}
		s.orders = []domain.Order{}
	}
	return s
}

// CurrentUser returns the session user with credentials stripped, or nil.
func (s *Store) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := s.user.Session()
	return &u
}

// Users returns a copy of the stored accounts.
func (s *Store) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.User(nil), s.users...)
}

// Products returns a copy of the open marketplace listing.
func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Product(nil), s.products...)
}

// Cart returns a copy of the session user's cart.
func (s *Store) Cart() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartItem(nil), s.cart...)
}

// Orders returns a copy of the session user's order history, newest first.
func (s *Store) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Order(nil), s.orders...)
}

// Login authenticates by email and password and swaps in that user's cart
// and orders partitions. The returned session user carries no credentials.
func (s *Store) Login(ctx context.Context, email, password string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.TrimSpace(email)
	var found *domain.User
	for i := range s.users {
		if s.users[i].Email == email {
			found = &s.users[i]
			break
		}
	}
	if found == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	session := found.Session()
	s.user = &session
	s.persist(ctx, storage.KeyUser, session)
	s.loadPartitions(ctx, session.ID)

	s.logger.Printf("store: login user_id=%s", session.ID)
	u := session
	return &u, nil
}

// Register creates an account and starts a session for it. The new user
// begins with an empty cart and order history.
func (s *Store) Register(ctx context.Context, email, password, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)
	if email == "" || username == "" || strings.TrimSpace(password) == "" {
		return nil, domain.ErrInvalidInput
	}
	for i := range s.users {
		if s.users[i].Email == email {
			return nil, domain.ErrAccountExists
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := domain.User{
		ID:           s.newID(),
		Email:        email,
		Username:     username,
		PasswordHash: string(hashed),
	}
	s.users = append(s.users, user)
	s.persist(ctx, storage.KeyUsers, s.users)

	session := user.Session()
	s.user = &session
	s.persist(ctx, storage.KeyUser, session)
	s.cart = []domain.CartItem{}
	s.orders = []domain.Order{}

	s.logger.Printf("store: registered user_id=%s", session.ID)
	u := session
	return &u, nil
}

// Logout clears the session. It never fails.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.cart = []domain.CartItem{}
	s.orders = []domain.Order{}
	if err := s.backing.Remove(ctx, storage.KeyUser); err != nil {
		s.logger.Printf("store: remove %s: %v", storage.KeyUser, err)
	}
}

// UpdateUser changes the session user's username on both the session copy
// and the stored accounts. With no session it is a no-op returning nil.
func (s *Store) UpdateUser(ctx context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, nil
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.ErrInvalidInput
	}

	s.user.Username = username
	s.persist(ctx, storage.KeyUser, *s.user)

	for i := range s.users {
		if s.users[i].ID == s.user.ID {
			s.users[i].Username = username
			break
		}
	}
	s.persist(ctx, storage.KeyUsers, s.users)

	u := s.user.Session()
	return &u, nil
}

// GetProductByID returns the listed product with the given id.
func (s *Store) GetProductByID(id string) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// CreateProduct lists a new product for the session user and prepends it to
// the marketplace.
func (s *Store) CreateProduct(ctx context.Context, in ProductInput) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, domain.ErrNotAuthenticated
	}
	if err := validateProductInput(in); err != nil {
		return nil, err
	}

	product := domain.Product{
		ID:          s.newID(),
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		SellerID:    s.user.ID,
	}
	s.products = append([]domain.Product{product}, s.products...)
	s.persist(ctx, storage.KeyProducts, s.products)

	s.logger.Printf("store: created product id=%s seller_id=%s", product.ID, product.SellerID)
	return &product, nil
}

// UpdateProduct replaces the caller-supplied fields of the matching product,
// preserving its id and seller. Seller ownership is the presentation layer's
// concern; handlers check it before calling in.
func (s *Store) UpdateProduct(ctx context.Context, id string, in ProductInput) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateProductInput(in); err != nil {
		return nil, err
	}
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		s.products[i].Title = strings.TrimSpace(in.Title)
		s.products[i].Description = in.Description
		s.products[i].Price = in.Price
		s.products[i].Category = in.Category
		s.products[i].ImageURL = in.ImageURL
		s.persist(ctx, storage.KeyProducts, s.products)
		p := s.products[i]
		return &p, nil
	}
	return nil, domain.ErrNotFound
}

// DeleteProduct removes the matching product from the marketplace. Deleting
// an absent id is a no-op; historical orders are untouched either way.
func (s *Store) DeleteProduct(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.products[:0]
	removed := false
	for _, p := range s.products {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	s.products = kept
	if removed {
		s.persist(ctx, storage.KeyProducts, s.products)
	}
}

// AddToCart puts a product in the session user's cart with quantity 1.
// Re-adding a product already in the cart is a no-op, as is a seller adding
// their own listing.
func (s *Store) AddToCart(ctx context.Context, product domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return domain.ErrNotAuthenticated
	}
	if product.SellerID == s.user.ID {
		return nil
	}
	for i := range s.cart {
		if s.cart[i].ID == product.ID {
			return nil
		}
	}
	s.cart = append(s.cart, domain.CartItem{Product: product, Quantity: 1})
	s.persist(ctx, storage.CartKey(s.user.ID), s.cart)
	return nil
}

// RemoveFromCart drops the matching cart entry. Absent ids are a no-op.
func (s *Store) RemoveFromCart(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return
	}
	kept := s.cart[:0]
	for _, item := range s.cart {
		if item.ID == productID {
			continue
		}
		kept = append(kept, item)
	}
	s.cart = kept
	s.persist(ctx, storage.CartKey(s.user.ID), s.cart)
}

// Checkout turns the cart into an order: the order is prepended to the
// user's history, every purchased product leaves the marketplace, and the
// cart empties. With no session or an empty cart it fails without touching
// any state.
func (s *Store) Checkout(ctx context.Context) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil || len(s.cart) == 0 {
		return nil, domain.ErrCannotCheckout
	}

	items := make([]domain.Product, 0, len(s.cart))
	purchased := make(map[string]bool, len(s.cart))
	var total float64
	for _, item := range s.cart {
		items = append(items, item.Product)
		purchased[item.ID] = true
		total += item.Price * float64(item.Quantity)
	}

	order := domain.Order{
		ID:        s.newID(),
		UserID:    s.user.ID,
		Items:     items,
		OrderDate: time.Now().UTC().Format(time.RFC3339),
		Total:     total,
	}

	s.orders = append([]domain.Order{order}, s.orders...)
	s.persist(ctx, storage.OrdersKey(s.user.ID), s.orders)

	kept := s.products[:0]
	for _, p := range s.products {
		if purchased[p.ID] {
			continue
		}
		kept = append(kept, p)
	}
	s.products = kept
	s.persist(ctx, storage.KeyProducts, s.products)

	s.cart = []domain.CartItem{}
	s.persist(ctx, storage.CartKey(s.user.ID), s.cart)

	s.logger.Printf("store: checkout user_id=%s order_id=%s total=%.2f", order.UserID, order.ID, order.Total)
	o := order
	return &o, nil
}

// loadPartitions reads the cart/orders partitions for a user id, defaulting
// to empty. Callers must hold the mutex.
func (s *Store) loadPartitions(ctx context.Context, userID string) {
	s.cart = []domain.CartItem{}
	s.orders = []domain.Order{}
	s.read(ctx, storage.CartKey(userID), &s.cart)
	s.read(ctx, storage.OrdersKey(userID), &s.orders)
}

// read unmarshals the blob under key into dst. A missing key, read failure
// or decode failure leaves dst untouched and reports false.
func (s *Store) read(ctx context.Context, key string, dst interface{}) bool {
	blob, ok, err := s.backing.Get(ctx, key)
	if err != nil {
		s.logger.Printf("store: read %s: %v", key, err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(blob, dst); err != nil {
		s.logger.Printf("store: decode %s: %v", key, err)
		return false
	}
	return true
}

// persist writes v under key, logging and swallowing failures. Callers must
// hold the mutex.
func (s *Store) persist(ctx context.Context, key string, v interface{}) {
	blob, err := json.Marshal(v)
	if err != nil {
		s.logger.Printf("store: encode %s: %v", key, err)
		return
	}
	if err := s.backing.Set(ctx, key, blob); err != nil {
		s.logger.Printf("store: persist %s: %v", key, err)
	}
}

// newID returns an opaque timestamp-derived id, strictly increasing even
// when two calls land on the same millisecond.
func (s *Store) newID() string {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

func validateProductInput(in ProductInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return domain.ErrInvalidInput
	}
	if in.Price < 0 || math.IsNaN(in.Price) || math.IsInf(in.Price, 0) {
		return domain.ErrInvalidInput
	}
	if !domain.ValidCategory(in.Category) {
		return domain.ErrInvalidInput
	}
	return nil
}
