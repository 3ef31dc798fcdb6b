// Package memory implements repository.Store with in-process maps. It backs
// the service tests; the production store is the gorm/Postgres one.
package memory

import (
	"sort"
	"sync"
	"time"

	"go-shop-ledger/internal/model"
	"go-shop-ledger/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Store struct {
	mu         sync.RWMutex
	products   map[uuid.UUID]*model.Product
	shops      map[uuid.UUID]*model.Shop
	shopLinks  map[uuid.UUID][]uuid.UUID // shop -> product IDs
	stocks     map[uuid.UUID]*model.Stock
	dailySales map[uuid.UUID]*model.DailySale
	ledger     map[ledgerKey]*model.LedgerEntry
	users      map[uuid.UUID]*model.User
}

type ledgerKey struct {
	shopID  uuid.UUID
	dateKey string
}

var _ repository.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		products:   make(map[uuid.UUID]*model.Product),
		shops:      make(map[uuid.UUID]*model.Shop),
		shopLinks:  make(map[uuid.UUID][]uuid.UUID),
		stocks:     make(map[uuid.UUID]*model.Stock),
		dailySales: make(map[uuid.UUID]*model.DailySale),
		ledger:     make(map[ledgerKey]*model.LedgerEntry),
		users:      make(map[uuid.UUID]*model.User),
	}
}

func (s *Store) Products() repository.ProductRepository     { return &productRepo{s} }
func (s *Store) Shops() repository.ShopRepository           { return &shopRepo{s} }
func (s *Store) Stocks() repository.StockRepository         { return &stockRepo{s} }
func (s *Store) DailySales() repository.DailySaleRepository { return &dailySaleRepo{s} }
func (s *Store) Ledger() repository.LedgerRepository        { return &ledgerRepo{s} }
func (s *Store) Users() repository.UserRepository           { return &userRepo{s} }

// Transaction runs fn against the same store. Rollback is not simulated;
// services validate before they write, which is what the tests exercise.
func (s *Store) Transaction(fn func(repository.Store) error) error {
	return fn(s)
}

func assignID(base *model.BaseModel) {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	now := time.Now()
	if base.CreatedAt.IsZero() {
		base.CreatedAt = now
	}
	base.UpdatedAt = now
}

// --- products ---

type productRepo struct{ s *Store }

func (r *productRepo) Create(product *model.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	assignID(&product.BaseModel)
	cp := *product
	r.s.products[product.ID] = &cp
	return nil
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]model.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *productRepo) FindByIDs(ids []uuid.UUID) ([]model.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.s.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *productRepo) UpdateTotalPic(id uuid.UUID, totalPic int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.TotalPic = totalPic
	p.UpdatedAt = time.Now()
	return nil
}

// --- shops ---

type shopRepo struct{ s *Store }

func (r *shopRepo) Create(shop *model.Shop) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	assignID(&shop.BaseModel)
	linked := make([]uuid.UUID, 0, len(shop.Products))
	for _, p := range shop.Products {
		linked = append(linked, p.ID)
	}
	cp := *shop
	cp.Products = nil
	r.s.shops[shop.ID] = &cp
	r.s.shopLinks[shop.ID] = linked
	return nil
}

func (r *shopRepo) FindAll() ([]model.Shop, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]model.Shop, 0, len(r.s.shops))
	for id, sh := range r.s.shops {
		cp := *sh
		cp.Products = r.s.linkedProducts(id)
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *shopRepo) FindByID(id uuid.UUID) (*model.Shop, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sh, ok := r.s.shops[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *sh
	cp.Products = r.s.linkedProducts(id)
	return &cp, nil
}

func (r *shopRepo) Update(shop *model.Shop) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.shops[shop.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *shop
	cp.Products = nil
	cp.CreatedAt = existing.CreatedAt
	cp.UpdatedAt = time.Now()
	r.s.shops[shop.ID] = &cp
	return nil
}

func (r *shopRepo) ReplaceProducts(shop *model.Shop, products []model.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.shops[shop.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	linked := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		linked = append(linked, p.ID)
	}
	r.s.shopLinks[shop.ID] = linked
	return nil
}

func (r *shopRepo) UpdateInvestment(id uuid.UUID, totalInvestment int64, dateKey string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sh, ok := r.s.shops[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	sh.TotalInvestment = totalInvestment
	sh.ReportDate = dateKey
	sh.UpdatedAt = time.Now()
	return nil
}

func (r *shopRepo) Delete(id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.shops, id)
	delete(r.s.shopLinks, id)
	return nil
}

// linkedProducts resolves a shop's product associations; callers hold the lock.
func (s *Store) linkedProducts(shopID uuid.UUID) []model.Product {
	ids := s.shopLinks[shopID]
	out := make([]model.Product, 0, len(ids))
	for _, pid := range ids {
		if p, ok := s.products[pid]; ok {
			out = append(out, *p)
		}
	}
	return out
}

// --- stocks ---

type stockRepo struct{ s *Store }

func (r *stockRepo) Create(stock *model.Stock) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	assignID(&stock.BaseModel)
	cp := *stock
	cp.Product = nil
	cp.Shop = nil
	r.s.stocks[stock.ID] = &cp
	return nil
}

func (r *stockRepo) FindByShopAndDate(shopID uuid.UUID, dateKey string) ([]model.Stock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.Stock
	for _, st := range r.s.stocks {
		if st.ShopID == shopID && st.Date == dateKey {
			out = append(out, *st)
		}
	}
	return out, nil
}

func (r *stockRepo) ExistsForShopOnDate(shopID uuid.UUID, dateKey string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, st := range r.s.stocks {
		if st.ShopID == shopID && st.Date == dateKey {
			return true, nil
		}
	}
	return false, nil
}

func (r *stockRepo) DeleteByShopAndDate(shopID uuid.UUID, dateKey string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, st := range r.s.stocks {
		if st.ShopID == shopID && st.Date == dateKey {
			delete(r.s.stocks, id)
		}
	}
	return nil
}

func (r *stockRepo) FindFiltered(filter repository.StockFilter) ([]model.Stock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.Stock
	for _, st := range r.s.stocks {
		if filter.ShopID != nil && st.ShopID != *filter.ShopID {
			continue
		}
		if filter.ProductID != nil && st.ProductID != *filter.ProductID {
			continue
		}
		cp := *st
		if p, ok := r.s.products[st.ProductID]; ok {
			pc := *p
			cp.Product = &pc
		}
		if sh, ok := r.s.shops[st.ShopID]; ok {
			sc := *sh
			cp.Shop = &sc
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stockRepo) FindByShop(shopID uuid.UUID) ([]model.Stock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.Stock
	for _, st := range r.s.stocks {
		if st.ShopID == shopID {
			out = append(out, *st)
		}
	}
	return out, nil
}

// --- daily sales ---

type dailySaleRepo struct{ s *Store }

func (r *dailySaleRepo) Create(sale *model.DailySale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	assignID(&sale.BaseModel)
	cp := *sale
	cp.Stocks = nil
	cp.Shop = nil
	r.s.dailySales[sale.ID] = &cp
	return nil
}

func (r *dailySaleRepo) FindByShopAndDate(shopID uuid.UUID, dateKey string) ([]model.DailySale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.DailySale
	for _, ds := range r.s.dailySales {
		if ds.ShopID == shopID && ds.Date == dateKey {
			out = append(out, *ds)
		}
	}
	return out, nil
}

func (r *dailySaleRepo) FindOneByShopAndDate(shopID uuid.UUID, dateKey string) (*model.DailySale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, ds := range r.s.dailySales {
		if ds.ShopID == shopID && ds.Date == dateKey {
			cp := *ds
			for _, st := range r.s.stocks {
				if st.DailySaleID != nil && *st.DailySaleID == ds.ID {
					cp.Stocks = append(cp.Stocks, *st)
				}
			}
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *dailySaleRepo) DeleteByShopAndDate(shopID uuid.UUID, dateKey string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, ds := range r.s.dailySales {
		if ds.ShopID == shopID && ds.Date == dateKey {
			delete(r.s.dailySales, id)
		}
	}
	return nil
}

// --- ledger ---

type ledgerRepo struct{ s *Store }

func (r *ledgerRepo) FindOneByShopAndDate(shopID uuid.UUID, dateKey string) (*model.LedgerEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	entry, ok := r.s.ledger[ledgerKey{shopID, dateKey}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *entry
	return &cp, nil
}

func (r *ledgerRepo) Upsert(entry *model.LedgerEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := ledgerKey{entry.ShopID, entry.Date}
	if existing, ok := r.s.ledger[key]; ok {
		entry.ID = existing.ID
		entry.CreatedAt = existing.CreatedAt
		entry.UpdatedAt = time.Now()
	} else {
		assignID(&entry.BaseModel)
	}
	cp := *entry
	r.s.ledger[key] = &cp
	return nil
}

func (r *ledgerRepo) FindByShop(shopID uuid.UUID) ([]model.LedgerEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []model.LedgerEntry
	for _, entry := range r.s.ledger {
		if entry.ShopID == shopID {
			out = append(out, *entry)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// --- users ---

type userRepo struct{ s *Store }

func (r *userRepo) FindByEmail(email string) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *userRepo) FindByID(id uuid.UUID) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *userRepo) Create(user *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	assignID(&user.BaseModel)
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *userRepo) Update(user *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *user
	cp.UpdatedAt = time.Now()
	r.s.users[user.ID] = &cp
	return nil
}

func (r *userRepo) UpdatePassword(userID uuid.UUID, hashedPassword string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Password = hashedPassword
	return nil
}

func (r *userRepo) UpdateTokenVersion(userID uuid.UUID, version string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.TokenVersion = version
	return nil
}
