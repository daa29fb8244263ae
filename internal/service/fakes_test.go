package service

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-salestrack/internal/model"
	"go-salestrack/internal/repository"
)

// In-memory repository fakes. They mirror the query semantics of the real
// Postgres-backed repositories closely enough for service-level tests,
// including soft-delete visibility and scoped lookups.

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*model.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[uuid.UUID]*model.Account{}}
}

func (r *fakeAccountRepo) Create(account *model.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	copied := *account
	r.accounts[account.ID] = &copied
	return nil
}

func (r *fakeAccountRepo) Update(account *model.Account) error {
	copied := *account
	r.accounts[account.ID] = &copied
	return nil
}

func (r *fakeAccountRepo) FindByID(id uuid.UUID) (*model.Account, error) {
	if account, ok := r.accounts[id]; ok {
		copied := *account
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAccountRepo) FindByEmail(email string) (*model.Account, error) {
	for _, account := range r.accounts {
		if account.Email == email {
			copied := *account
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAccountRepo) FindByEmailAndRole(email, role string) (*model.Account, error) {
	for _, account := range r.accounts {
		if account.Email == email && account.Role == role {
			copied := *account
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAccountRepo) FindByPhone(phone string) (*model.Account, error) {
	for _, account := range r.accounts {
		if account.Phone == phone {
			copied := *account
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAccountRepo) FindByPhoneExcluding(phone string, excludeID uuid.UUID) (*model.Account, error) {
	for _, account := range r.accounts {
		if account.Phone == phone && account.ID != excludeID {
			copied := *account
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAccountRepo) FindAdmin() (*model.Account, error) {
	for _, account := range r.accounts {
		if account.Role == model.RoleAdmin {
			copied := *account
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAccountRepo) FindCustomers() ([]model.Account, error) {
	var customers []model.Account
	for _, account := range r.accounts {
		if account.Role == model.RoleCustomer {
			customers = append(customers, *account)
		}
	}
	sort.Slice(customers, func(i, j int) bool {
		return customers[i].CreatedAt.After(customers[j].CreatedAt)
	})
	return customers, nil
}

func (r *fakeAccountRepo) FindCustomerByID(id uuid.UUID) (*model.Account, error) {
	if account, ok := r.accounts[id]; ok && account.Role == model.RoleCustomer {
		copied := *account
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAccountRepo) UpdateStatus(id uuid.UUID, status string) error {
	if account, ok := r.accounts[id]; ok && account.Role == model.RoleCustomer {
		account.Status = status
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeAccountRepo) UpdatePassword(id uuid.UUID, hashedPassword string) error {
	if account, ok := r.accounts[id]; ok {
		account.Password = hashedPassword
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeAccountRepo) DeleteCustomer(id uuid.UUID) error {
	if account, ok := r.accounts[id]; ok && account.Role == model.RoleCustomer {
		delete(r.accounts, id)
		return nil
	}
	return gorm.ErrRecordNotFound
}

type fakeShopRepo struct {
	shops map[uuid.UUID]*model.Shop
}

func newFakeShopRepo() *fakeShopRepo {
	return &fakeShopRepo{shops: map[uuid.UUID]*model.Shop{}}
}

func (r *fakeShopRepo) Create(shop *model.Shop) error {
	if shop.ID == uuid.Nil {
		shop.ID = uuid.New()
	}
	copied := *shop
	r.shops[shop.ID] = &copied
	return nil
}

func (r *fakeShopRepo) Update(shop *model.Shop) error {
	copied := *shop
	r.shops[shop.ID] = &copied
	return nil
}

func (r *fakeShopRepo) FindByCustomerID(customerID uuid.UUID) (*model.Shop, error) {
	for _, shop := range r.shops {
		if shop.CustomerID == customerID {
			copied := *shop
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeShopRepo) FindAllByCustomerID(customerID uuid.UUID) ([]model.Shop, error) {
	var shops []model.Shop
	for _, shop := range r.shops {
		if shop.CustomerID == customerID {
			shops = append(shops, *shop)
		}
	}
	return shops, nil
}

func (r *fakeShopRepo) FindByIDAndCustomerID(id, customerID uuid.UUID) (*model.Shop, error) {
	if shop, ok := r.shops[id]; ok && shop.CustomerID == customerID {
		copied := *shop
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeShopRepo) FindByEmail(email string) (*model.Shop, error) {
	for _, shop := range r.shops {
		if shop.ShopEmail == email {
			copied := *shop
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeShopRepo) FindByPhone(phone string) (*model.Shop, error) {
	for _, shop := range r.shops {
		if shop.Phone == phone {
			copied := *shop
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeShopRepo) FindByEmailExcluding(email string, excludeID uuid.UUID) (*model.Shop, error) {
	for _, shop := range r.shops {
		if shop.ShopEmail == email && shop.ID != excludeID {
			copied := *shop
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeShopRepo) FindByPhoneExcluding(phone string, excludeID uuid.UUID) (*model.Shop, error) {
	for _, shop := range r.shops {
		if shop.Phone == phone && shop.ID != excludeID {
			copied := *shop
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeShopRepo) Delete(id uuid.UUID) error {
	delete(r.shops, id)
	return nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*model.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[uuid.UUID]*model.Category{}}
}

func (r *fakeCategoryRepo) Create(category *model.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	copied := *category
	copied.Shop = nil
	r.categories[category.ID] = &copied
	return nil
}

func (r *fakeCategoryRepo) Update(category *model.Category) error {
	copied := *category
	copied.Shop = nil
	r.categories[category.ID] = &copied
	return nil
}

func (r *fakeCategoryRepo) FindByIDAndCustomerID(id, customerID uuid.UUID) (*model.Category, error) {
	if category, ok := r.categories[id]; ok && category.CustomerID == customerID {
		copied := *category
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCategoryRepo) List(filter repository.CategoryFilter) ([]model.Category, int64, error) {
	var matched []model.Category
	for _, category := range r.categories {
		if category.CustomerID != filter.CustomerID {
			continue
		}
		if filter.ShopID != nil && category.ShopID != *filter.ShopID {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(category.Name), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, *category)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Position < matched[j].Position
	})

	total := int64(len(matched))
	offset := (filter.Page - 1) * filter.Limit
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *fakeCategoryRepo) ListAll(customerID uuid.UUID) ([]model.Category, error) {
	var matched []model.Category
	for _, category := range r.categories {
		if category.CustomerID == customerID {
			matched = append(matched, *category)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Position < matched[j].Position
	})
	return matched, nil
}

func (r *fakeCategoryRepo) Delete(id uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*model.Product
	catRepo  *fakeCategoryRepo
}

func newFakeProductRepo(catRepo *fakeCategoryRepo) *fakeProductRepo {
	return &fakeProductRepo{products: map[uuid.UUID]*model.Product{}, catRepo: catRepo}
}

func (r *fakeProductRepo) Create(product *model.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	copied := *product
	copied.Shop = nil
	copied.Category = nil
	r.products[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) UpdateFields(id uuid.UUID, fields map[string]interface{}) error {
	product, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for key, value := range fields {
		switch key {
		case "name":
			product.Name = value.(string)
		case "sale_price":
			product.SalePrice = value.(float64)
		case "buy_price":
			product.BuyPrice = value.(float64)
		case "quantity":
			product.Quantity = value.(int)
		case "category_id":
			if value == nil {
				product.CategoryID = nil
			} else {
				categoryID := value.(uuid.UUID)
				product.CategoryID = &categoryID
			}
		}
	}
	return nil
}

func (r *fakeProductRepo) FindByIDAndCustomerID(id, customerID uuid.UUID) (*model.Product, error) {
	product, ok := r.products[id]
	if !ok || product.CustomerID != customerID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *product
	if copied.CategoryID != nil && r.catRepo != nil {
		if category, ok := r.catRepo.categories[*copied.CategoryID]; ok {
			categoryCopy := *category
			copied.Category = &categoryCopy
		}
	}
	return &copied, nil
}

func (r *fakeProductRepo) List(filter repository.ProductFilter) ([]model.Product, int64, error) {
	var matched []model.Product
	for _, product := range r.products {
		if filter.CustomerID != nil && product.CustomerID != *filter.CustomerID {
			continue
		}
		if filter.ShopID != nil && product.ShopID != *filter.ShopID {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(product.Name), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, *product)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	offset := (filter.Page - 1) * filter.Limit
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *fakeProductRepo) FindByShopID(shopID uuid.UUID) ([]model.Product, error) {
	var matched []model.Product
	for _, product := range r.products {
		if product.ShopID == shopID {
			matched = append(matched, *product)
		}
	}
	return matched, nil
}

func (r *fakeProductRepo) FindByCategoryID(categoryID uuid.UUID) ([]model.Product, error) {
	var matched []model.Product
	for _, product := range r.products {
		if product.CategoryID != nil && *product.CategoryID == categoryID {
			matched = append(matched, *product)
		}
	}
	return matched, nil
}

func (r *fakeProductRepo) CountByCategoryID(categoryID uuid.UUID) (int64, error) {
	var count int64
	for _, product := range r.products {
		if product.CategoryID != nil && *product.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (r *fakeProductRepo) CountByShopID(shopID uuid.UUID) (int64, error) {
	var count int64
	for _, product := range r.products {
		if product.ShopID == shopID {
			count++
		}
	}
	return count, nil
}

func (r *fakeProductRepo) Delete(id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) DeleteByShopID(shopID uuid.UUID) error {
	for id, product := range r.products {
		if product.ShopID == shopID {
			delete(r.products, id)
		}
	}
	return nil
}

func (r *fakeProductRepo) ClearCategoryRefs(categoryID uuid.UUID) error {
	for _, product := range r.products {
		if product.CategoryID != nil && *product.CategoryID == categoryID {
			product.CategoryID = nil
		}
	}
	return nil
}

type fakeImageRepo struct {
	images map[uuid.UUID]*model.ProductImage
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{images: map[uuid.UUID]*model.ProductImage{}}
}

func (r *fakeImageRepo) Create(image *model.ProductImage) error {
	if image.ID == uuid.Nil {
		image.ID = uuid.New()
	}
	copied := *image
	r.images[image.ID] = &copied
	return nil
}

func (r *fakeImageRepo) FindByID(id uuid.UUID) (*model.ProductImage, error) {
	if image, ok := r.images[id]; ok {
		copied := *image
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeImageRepo) FindByProductID(productID uuid.UUID) ([]model.ProductImage, error) {
	var matched []model.ProductImage
	for _, image := range r.images {
		if image.ProductID == productID {
			matched = append(matched, *image)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ImageOrder < matched[j].ImageOrder
	})
	return matched, nil
}

func (r *fakeImageRepo) FindCover(productID uuid.UUID) (*model.ProductImage, error) {
	images, _ := r.FindByProductID(productID)
	if len(images) == 0 {
		return nil, nil
	}
	return &images[0], nil
}

func (r *fakeImageRepo) CountByProductID(productID uuid.UUID) (int64, error) {
	images, _ := r.FindByProductID(productID)
	return int64(len(images)), nil
}

func (r *fakeImageRepo) Delete(id uuid.UUID) error {
	delete(r.images, id)
	return nil
}

func (r *fakeImageRepo) DeleteByProductID(productID uuid.UUID) error {
	for id, image := range r.images {
		if image.ProductID == productID {
			delete(r.images, id)
		}
	}
	return nil
}

type fakeVerificationRepo struct {
	codes map[string]string
}

func newFakeVerificationRepo() *fakeVerificationRepo {
	return &fakeVerificationRepo{codes: map[string]string{}}
}

func (r *fakeVerificationRepo) Upsert(email, code string) error {
	r.codes[email] = code
	return nil
}

func (r *fakeVerificationRepo) Find(email, code string) (*model.VerificationCode, error) {
	if stored, ok := r.codes[email]; ok && stored == code {
		return &model.VerificationCode{Email: email, Code: code}, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeVerificationRepo) Delete(email, code string) error {
	if stored, ok := r.codes[email]; ok && stored == code {
		delete(r.codes, email)
	}
	return nil
}

// fakeMailer records sent mail instead of hitting SMTP
type fakeMailer struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func (m *fakeMailer) Send(to, subject, htmlBody string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}
