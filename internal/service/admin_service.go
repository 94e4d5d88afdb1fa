package service

import (
	"fmt"

	"gabriela-colchoes/internal/domain"
	"gabriela-colchoes/internal/repository"
	"gabriela-colchoes/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/currency"
)

// BcryptCost is the cost factor for bcrypt hashing
const BcryptCost = 10

// AdminView is the admin panel's UI routing flag.
type AdminView string

const (
	AdminViewDashboard AdminView = "dashboard"
	AdminViewProducts  AdminView = "products"
	AdminViewStock     AdminView = "stock"
)

// StockStatus classifies a product's stock level for the dashboard.
type StockStatus string

const (
	StockStatusOut    StockStatus = "out"
	StockStatusLow    StockStatus = "low"
	StockStatusNormal StockStatus = "normal"
)

// DashboardStats summarizes the catalog for the admin dashboard.
type DashboardStats struct {
	TotalProducts  int
	TotalUnits     int
	InventoryValue domain.Money
	LowStock       []domain.Product
	OutOfStock     []domain.Product
}

// AdminService is the admin panel's store: authentication state, current
// view and write access to the shared catalog. Authentication is a
// two-state machine; a failed login or password change leaves the state
// untouched, a successful password change forces re-login.
type AdminService struct {
	catalog           repository.CatalogRepository
	logger            *zap.Logger
	username          string
	passwordHash      []byte
	authenticated     bool
	currentView       AdminView
	unit              currency.Unit
	lowStockThreshold int
}

// NewAdminService creates the admin store with the given startup password.
// The password is hashed immediately; the plaintext is never retained.
func NewAdminService(
	catalog repository.CatalogRepository,
	username, password string,
	lowStockThreshold int,
	logger *zap.Logger,
) (*AdminService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	return &AdminService{
		catalog:           catalog,
		logger:            logger,
		username:          username,
		passwordHash:      hash,
		currentView:       AdminViewDashboard,
		unit:              currency.BRL,
		lowStockThreshold: lowStockThreshold,
	}, nil
}

// Login authenticates the admin. It succeeds only when the username matches
// the configured admin account and the password matches the stored
// credential; any mismatch returns false with no state change.
func (s *AdminService) Login(username, password string) bool {
	if username != s.username {
		s.logger.Warn("admin login rejected", zap.String("username", username))
		return false
	}
	if bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) != nil {
		s.logger.Warn("admin login rejected", zap.String("username", username))
		return false
	}

	s.authenticated = true
	s.logger.Info("admin logged in")
	return true
}

// Logout ends the session and resets the view to the dashboard.
func (s *AdminService) Logout() {
	s.authenticated = false
	s.currentView = AdminViewDashboard
	s.logger.Info("admin logged out")
}

// IsAuthenticated reports whether the admin is logged in.
func (s *AdminService) IsAuthenticated() bool {
	return s.authenticated
}

// CurrentView returns the active admin view.
func (s *AdminService) CurrentView() AdminView {
	return s.currentView
}

// SetCurrentView switches the admin view.
func (s *AdminService) SetCurrentView(view AdminView) {
	s.currentView = view
}

// ChangePassword replaces the admin credential. It succeeds only when the
// current password matches; on success the new password is stored and the
// session is ended, forcing a re-login.
func (s *AdminService) ChangePassword(current, next string) bool {
	if bcrypt.CompareHashAndPassword(s.passwordHash, []byte(current)) != nil {
		s.logger.Warn("password change rejected")
		return false
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), BcryptCost)
	if err != nil {
		s.logger.Error("failed to hash new password", zap.Error(err))
		return false
	}

	s.passwordHash = hash
	s.authenticated = false
	s.logger.Info("admin password changed, re-login required")
	return true
}

// AddProduct validates and commits a draft into the catalog under a freshly
// generated id.
func (s *AdminService) AddProduct(draft domain.ProductDraft) (domain.Product, error) {
	if err := validation.Validate(draft); err != nil {
		return domain.Product{}, fmt.Errorf("invalid product draft: %w", err)
	}

	product, err := draft.Commit(s.unit)
	if err != nil {
		return domain.Product{}, err
	}
	product.ID = uuid.NewString()

	if err := s.catalog.Create(product); err != nil {
		return domain.Product{}, fmt.Errorf("failed to add product: %w", err)
	}

	s.logger.Info("product added",
		zap.String("id", product.ID),
		zap.String("name", product.Name),
	)
	return product, nil
}

// UpdateProduct merges the patch into the matching product. A stale id is a
// silent no-op.
func (s *AdminService) UpdateProduct(id string, patch domain.ProductPatch) error {
	if err := s.catalog.Update(id, patch); err != nil {
		return err
	}
	s.logger.Info("product updated", zap.String("id", id))
	return nil
}

// DeleteProduct removes the matching product. Idempotent.
func (s *AdminService) DeleteProduct(id string) {
	s.catalog.Delete(id)
	s.logger.Info("product deleted", zap.String("id", id))
}

// UpdateStock sets the stock level of the matching product. Negative values
// are rejected by the catalog itself.
func (s *AdminService) UpdateStock(id string, stock int) error {
	if err := s.catalog.UpdateStock(id, stock); err != nil {
		return err
	}
	s.logger.Info("stock updated", zap.String("id", id), zap.Int("stock", stock))
	return nil
}

// Products lists the catalog in the requested order.
func (s *AdminService) Products(sortBy repository.SortBy) []domain.Product {
	return s.catalog.List(sortBy)
}

// FindProduct returns the matching product.
func (s *AdminService) FindProduct(id string) (domain.Product, error) {
	return s.catalog.FindByID(id)
}

// StockStatusOf classifies a product against the low-stock threshold.
func (s *AdminService) StockStatusOf(p domain.Product) StockStatus {
	switch {
	case p.Stock == 0:
		return StockStatusOut
	case p.Stock <= s.lowStockThreshold:
		return StockStatusLow
	default:
		return StockStatusNormal
	}
}

// Stats computes the dashboard summary over the current catalog.
func (s *AdminService) Stats() DashboardStats {
	stats := DashboardStats{InventoryValue: domain.ZeroMoney(s.unit)}

	for _, p := range s.catalog.List(repository.SortByName) {
		stats.TotalProducts++
		stats.TotalUnits += p.Stock
		stats.InventoryValue = stats.InventoryValue.Add(p.Price.Mul(p.Stock))

		if p.Stock == 0 {
			stats.OutOfStock = append(stats.OutOfStock, p)
		}
		if p.Stock <= s.lowStockThreshold {
			stats.LowStock = append(stats.LowStock, p)
		}
	}

	return stats
}
