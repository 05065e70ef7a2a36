package paymentmethod

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeStorage struct {
	url string
	err error
}

func (f *fakeStorage) Upload(ctx context.Context, folder string, file *multipart.FileHeader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func (f *fakeStorage) Delete(ctx context.Context, publicURL string) error {
	return nil
}

func setupService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&PaymentMethod{}))

	return NewService(NewRepository(db), &fakeStorage{url: "https://cdn.example.com/qr.png"}), db
}

func TestValidateAccountDetails(t *testing.T) {
	cases := []struct {
		name       string
		methodType string
		payload    string
		wantErr    bool
	}{
		{"bank complete", TypeBank, `{"bank_name":"NIC Asia","account_name":"Sahayog","account_number":"0123456789"}`, false},
		{"bank missing account number", TypeBank, `{"bank_name":"NIC Asia","account_name":"Sahayog"}`, true},
		{"bank blank value counts as missing", TypeBank, `{"bank_name":" ","account_name":"Sahayog","account_number":"0123"}`, true},
		{"esewa complete", TypeESewa, `{"esewa_id":"9841000000","account_name":"Sahayog"}`, false},
		{"esewa missing id", TypeESewa, `{"account_name":"Sahayog"}`, true},
		{"khalti complete", TypeKhalti, `{"khalti_id":"9841000000","account_name":"Sahayog"}`, false},
		{"upi complete", TypeUPI, `{"upi_id":"sahayog@ybl"}`, false},
		{"upi missing id", TypeUPI, `{"note":"pay us"}`, true},
		{"unknown type with payload passes", "crypto", `{"wallet":"0xabc"}`, false},
		{"unknown type empty object fails", "crypto", `{}`, true},
		{"not json", TypeBank, `not json`, true},
		{"json array", TypeBank, `[1,2,3]`, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateAccountDetails(tc.methodType, []byte(tc.payload))
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInstructionsFallbackForUnknownType(t *testing.T) {
	assert.Contains(t, Instructions("crypto"), "Contact us")
	assert.NotContains(t, Instructions(TypeBank), "Contact us")
}

func TestCreateValidatesDetails(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Create(context.Background(), CreateInput{
		MethodName:     "Main Bank",
		MethodType:     "bank",
		AccountDetails: []byte(`{"bank_name":"NIC Asia"}`),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestCreateInactiveIsStoredInactive(t *testing.T) {
	svc, db := setupService(t)

	inactive := false
	created, err := svc.Create(context.Background(), CreateInput{
		MethodName:     "Dormant Bank",
		MethodType:     "bank",
		AccountDetails: []byte(`{"bank_name":"NIC Asia","account_name":"Sahayog","account_number":"0123"}`),
		IsActive:       &inactive,
	})
	require.NoError(t, err)
	assert.False(t, created.IsActive)

	// The row itself must carry the flag, not just the returned struct.
	var stored PaymentMethod
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.False(t, stored.IsActive)
}

func TestPublicListingActiveOnlyOrdered(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	inactive := false
	_, err := svc.Create(ctx, CreateInput{
		MethodName:     "Bank",
		MethodType:     "bank",
		AccountDetails: []byte(`{"bank_name":"NIC Asia","account_name":"Sahayog","account_number":"0123"}`),
		IsActive:       &inactive,
		DisplayOrder:   0,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateInput{
		MethodName:     "eSewa",
		MethodType:     "esewa",
		AccountDetails: []byte(`{"esewa_id":"9841000000","account_name":"Sahayog"}`),
		DisplayOrder:   1,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateInput{
		MethodName:     "Khalti",
		MethodType:     "khalti",
		AccountDetails: []byte(`{"khalti_id":"9841000001","account_name":"Sahayog"}`),
		DisplayOrder:   2,
	})
	require.NoError(t, err)

	public, err := svc.ListPublic(ctx)
	require.NoError(t, err)

	require.Len(t, public, 2)
	assert.Equal(t, "eSewa", public[0].MethodName)
	assert.Equal(t, "Khalti", public[1].MethodName)
	assert.NotEmpty(t, public[0].Instructions)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestToggleFlipsVisibility(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{
		MethodName:     "eSewa",
		MethodType:     "esewa",
		AccountDetails: []byte(`{"esewa_id":"9841000000","account_name":"Sahayog"}`),
	})
	require.NoError(t, err)
	require.True(t, created.IsActive)

	exists, err := svc.ActiveMethodExists(ctx, "eSewa")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = svc.SetActive(ctx, created.ID, false)
	require.NoError(t, err)

	exists, err = svc.ActiveMethodExists(ctx, "eSewa")
	require.NoError(t, err)
	assert.False(t, exists)

	public, err := svc.ListPublic(ctx)
	require.NoError(t, err)
	assert.Empty(t, public)
}

func TestUpdateRevalidatesOnTypeChange(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{
		MethodName:     "eSewa",
		MethodType:     "esewa",
		AccountDetails: []byte(`{"esewa_id":"9841000000","account_name":"Sahayog"}`),
	})
	require.NoError(t, err)

	// Changing the type without a matching payload must fail.
	bank := "bank"
	_, err = svc.Update(ctx, created.ID, UpdateInput{MethodType: &bank})
	assert.Error(t, err)

	// Changing type and payload together succeeds.
	updated, err := svc.Update(ctx, created.ID, UpdateInput{
		MethodType:     &bank,
		AccountDetails: []byte(`{"bank_name":"NIC Asia","account_name":"Sahayog","account_number":"0123"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "bank", updated.MethodType)
}

func TestSetActiveUnknownID(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.SetActive(context.Background(), 42, true)
	assert.ErrorIs(t, err, ErrNotFound)
}
