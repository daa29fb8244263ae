package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-salestrack/internal/model"
)

func newTestShopService() (ShopService, *fakeShopRepo, *fakeProductRepo) {
	shopRepo := newFakeShopRepo()
	productRepo := newFakeProductRepo(nil)
	return NewShopService(shopRepo, productRepo), shopRepo, productRepo
}

func shopRequest() *CreateShopRequest {
	return &CreateShopRequest{
		ShopName:  "Jane's Shop",
		ShopEmail: "shop@example.com",
		Phone:     "0898765432",
		Address:   "1 Main Street",
	}
}

func TestCreateShop_Success(t *testing.T) {
	svc, _, _ := newTestShopService()
	customerID := uuid.New()

	shop, err := svc.CreateShop(customerID, shopRequest(), "/uploads/shop-logos/logo.png")
	require.NoError(t, err)
	assert.Equal(t, customerID, shop.CustomerID)
	assert.Equal(t, "shop@example.com", shop.ShopEmail)
	assert.Equal(t, "/uploads/shop-logos/logo.png", shop.Logo)
}

func TestCreateShop_OnePerCustomer(t *testing.T) {
	svc, _, _ := newTestShopService()
	customerID := uuid.New()

	_, err := svc.CreateShop(customerID, shopRequest(), "")
	require.NoError(t, err)

	second := shopRequest()
	second.ShopEmail = "second@example.com"
	second.Phone = "0811111111"
	_, err = svc.CreateShop(customerID, second, "")
	assert.ErrorIs(t, err, ErrShopExists)
}

func TestCreateShop_DuplicateEmailAcrossCustomers(t *testing.T) {
	svc, _, _ := newTestShopService()

	_, err := svc.CreateShop(uuid.New(), shopRequest(), "")
	require.NoError(t, err)

	// Same shop email, different customer
	req := shopRequest()
	req.Phone = "0811111111"
	_, err = svc.CreateShop(uuid.New(), req, "")
	assert.ErrorIs(t, err, ErrShopEmailExists)
}

func TestCreateShop_DuplicatePhoneAcrossCustomers(t *testing.T) {
	svc, _, _ := newTestShopService()

	_, err := svc.CreateShop(uuid.New(), shopRequest(), "")
	require.NoError(t, err)

	req := shopRequest()
	req.ShopEmail = "other@example.com"
	_, err = svc.CreateShop(uuid.New(), req, "")
	assert.ErrorIs(t, err, ErrShopPhoneExists)
}

func TestCreateShop_ValidatesRequiredFields(t *testing.T) {
	svc, _, _ := newTestShopService()

	req := shopRequest()
	req.Address = ""
	_, err := svc.CreateShop(uuid.New(), req, "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetMyShops_IncludesProductCounts(t *testing.T) {
	svc, shopRepo, productRepo := newTestShopService()
	customerID := uuid.New()

	shop := &model.Shop{ShopName: "Jane's Shop", ShopEmail: "shop@example.com", Phone: "0898765432", CustomerID: customerID}
	require.NoError(t, shopRepo.Create(shop))
	for i := 0; i < 3; i++ {
		require.NoError(t, productRepo.Create(&model.Product{Name: "Widget", ShopID: shop.ID, CustomerID: customerID}))
	}

	shops, err := svc.GetMyShops(customerID)
	require.NoError(t, err)
	require.Len(t, shops, 1)
	assert.Equal(t, int64(3), shops[0].ProductCount)
}

func TestGetShop_ScopedToOwner(t *testing.T) {
	svc, shopRepo, _ := newTestShopService()
	ownerID := uuid.New()

	shop := &model.Shop{ShopName: "Jane's Shop", ShopEmail: "shop@example.com", Phone: "0898765432", CustomerID: ownerID}
	require.NoError(t, shopRepo.Create(shop))

	_, err := svc.GetShop(uuid.New(), shop.ID)
	assert.ErrorIs(t, err, ErrShopNotFound)

	detail, err := svc.GetShop(ownerID, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, shop.ID, detail.ID)
}

func TestUpdateShop_ReturnsPreviousLogo(t *testing.T) {
	svc, shopRepo, _ := newTestShopService()
	customerID := uuid.New()

	shop := &model.Shop{
		ShopName: "Jane's Shop", Logo: "/uploads/shop-logos/old.png",
		ShopEmail: "shop@example.com", Phone: "0898765432", CustomerID: customerID,
	}
	require.NoError(t, shopRepo.Create(shop))

	updated, previousLogo, err := svc.UpdateShop(customerID, shop.ID, &UpdateShopRequest{}, "/uploads/shop-logos/new.png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/shop-logos/old.png", previousLogo)
	assert.Equal(t, "/uploads/shop-logos/new.png", updated.Logo)
}

func TestUpdateShop_NoNewLogoKeepsOld(t *testing.T) {
	svc, shopRepo, _ := newTestShopService()
	customerID := uuid.New()

	shop := &model.Shop{
		ShopName: "Jane's Shop", Logo: "/uploads/shop-logos/old.png",
		ShopEmail: "shop@example.com", Phone: "0898765432", CustomerID: customerID,
	}
	require.NoError(t, shopRepo.Create(shop))

	updated, previousLogo, err := svc.UpdateShop(customerID, shop.ID, &UpdateShopRequest{ShopName: "Renamed"}, "")
	require.NoError(t, err)
	assert.Empty(t, previousLogo)
	assert.Equal(t, "/uploads/shop-logos/old.png", updated.Logo)
	assert.Equal(t, "Renamed", updated.ShopName)
}

func TestUpdateShop_EmailTakenByAnotherShop(t *testing.T) {
	svc, shopRepo, _ := newTestShopService()
	customerID := uuid.New()

	mine := &model.Shop{ShopName: "Mine", ShopEmail: "mine@example.com", Phone: "0811111111", CustomerID: customerID}
	require.NoError(t, shopRepo.Create(mine))
	other := &model.Shop{ShopName: "Other", ShopEmail: "other@example.com", Phone: "0822222222", CustomerID: uuid.New()}
	require.NoError(t, shopRepo.Create(other))

	_, _, err := svc.UpdateShop(customerID, mine.ID, &UpdateShopRequest{ShopEmail: "other@example.com"}, "")
	assert.ErrorIs(t, err, ErrShopEmailTaken)

	// Re-submitting the shop's own email is not a conflict
	_, _, err = svc.UpdateShop(customerID, mine.ID, &UpdateShopRequest{ShopEmail: "mine@example.com"}, "")
	assert.NoError(t, err)
}

func TestDeleteShop_CascadesToProducts(t *testing.T) {
	svc, shopRepo, productRepo := newTestShopService()
	customerID := uuid.New()

	shop := &model.Shop{ShopName: "Jane's Shop", ShopEmail: "shop@example.com", Phone: "0898765432", CustomerID: customerID}
	require.NoError(t, shopRepo.Create(shop))
	require.NoError(t, productRepo.Create(&model.Product{Name: "Widget", ShopID: shop.ID, CustomerID: customerID}))

	require.NoError(t, svc.DeleteShop(customerID, shop.ID))

	count, err := productRepo.CountByShopID(shop.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}
