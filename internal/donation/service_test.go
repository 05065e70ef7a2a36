package donation

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sahayognepal/charity-backend/internal/auth"
	"github.com/sahayognepal/charity-backend/internal/notification"
	"github.com/sahayognepal/charity-backend/internal/paymentmethod"
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

func setupService(t *testing.T, store *fakeStorage) (Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&auth.UserRole{},
		&auth.User{},
		&Donation{},
		&UserDonationStats{},
		&paymentmethod.PaymentMethod{},
		&notification.Notification{},
	))

	methodSvc := paymentmethod.NewService(paymentmethod.NewRepository(db), store)
	_, err = methodSvc.Create(context.Background(), paymentmethod.CreateInput{
		MethodName:     "eSewa",
		MethodType:     "esewa",
		AccountDetails: []byte(`{"esewa_id": "9841000000", "account_name": "Sahayog Nepal"}`),
		DisplayOrder:   1,
	})
	require.NoError(t, err)

	notifSvc := notification.NewService(notification.NewRepository(db))
	return NewService(NewRepository(db), methodSvc, notifSvc, store), db
}

func validInput() SubmitInput {
	return SubmitInput{
		Amount:        "2500",
		DonorName:     "Asha Gurung",
		DonorEmail:    "asha@example.com",
		DonorCountry:  "Nepal",
		PaymentMethod: "eSewa",
	}
}

func TestSubmitStartsPendingWithParsedAmount(t *testing.T) {
	svc, _ := setupService(t, &fakeStorage{url: "https://cdn.example.com/r.png"})

	d, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, StatusPending, d.Status)
	assert.Equal(t, 2500.0, d.Amount)
	assert.Equal(t, DefaultCurrency, d.Currency)
	assert.Nil(t, d.VerifiedBy)
	assert.Nil(t, d.VerifiedAt)
}

func TestSubmitValidation(t *testing.T) {
	svc, _ := setupService(t, &fakeStorage{})

	cases := []struct {
		name   string
		mutate func(*SubmitInput)
	}{
		{"zero amount", func(in *SubmitInput) { in.Amount = "0" }},
		{"negative amount", func(in *SubmitInput) { in.Amount = "-50" }},
		{"non-numeric amount", func(in *SubmitInput) { in.Amount = "lots" }},
		{"infinite amount", func(in *SubmitInput) { in.Amount = "+Inf" }},
		{"blank name", func(in *SubmitInput) { in.DonorName = "  " }},
		{"blank email", func(in *SubmitInput) { in.DonorEmail = "" }},
		{"malformed email", func(in *SubmitInput) { in.DonorEmail = "not-an-email" }},
		{"blank country", func(in *SubmitInput) { in.DonorCountry = "" }},
		{"blank payment method", func(in *SubmitInput) { in.PaymentMethod = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)
			_, err := svc.Submit(context.Background(), input)
			assert.Error(t, err)
		})
	}
}

func TestSubmitRejectsInactiveOrUnknownMethod(t *testing.T) {
	svc, _ := setupService(t, &fakeStorage{})

	input := validInput()
	input.PaymentMethod = "Western Union"

	_, err := svc.Submit(context.Background(), input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an active payment method")
}

func TestSubmitFailedUploadLeavesNoRow(t *testing.T) {
	store := &fakeStorage{err: errors.New("bucket unreachable")}
	svc, db := setupService(t, store)

	input := validInput()
	input.Receipt = &multipart.FileHeader{Filename: "receipt.png", Size: 1024}

	_, err := svc.Submit(context.Background(), input)
	require.ErrorIs(t, err, ErrUpload)

	var count int64
	require.NoError(t, db.Model(&Donation{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitStoresReceiptURL(t *testing.T) {
	svc, _ := setupService(t, &fakeStorage{url: "https://cdn.example.com/receipts/abc.png"})

	input := validInput()
	input.Receipt = &multipart.FileHeader{Filename: "receipt.png", Size: 1024}

	d, err := svc.Submit(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/receipts/abc.png", d.ReceiptURL)
}

func seedAdmin(t *testing.T, db *gorm.DB) *auth.User {
	t.Helper()
	role := auth.UserRole{RoleName: auth.RoleAdmin}
	require.NoError(t, db.Create(&role).Error)
	admin := auth.User{FullName: "Admin", Email: "admin@example.com", PasswordHash: "x", RoleID: role.ID}
	require.NoError(t, db.Create(&admin).Error)
	return &admin
}

func TestVerifySetsVerifierAndTimestampTogether(t *testing.T) {
	svc, db := setupService(t, &fakeStorage{})
	admin := seedAdmin(t, db)

	d, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)

	verified, err := svc.Verify(context.Background(), d.ID, admin)
	require.NoError(t, err)

	assert.Equal(t, StatusVerified, verified.Status)
	require.NotNil(t, verified.VerifiedBy)
	require.NotNil(t, verified.VerifiedAt)
	assert.Equal(t, admin.ID, *verified.VerifiedBy)
}

func TestSecondTransitionIsRejected(t *testing.T) {
	svc, db := setupService(t, &fakeStorage{})
	admin := seedAdmin(t, db)

	d, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), d.ID, admin)
	require.NoError(t, err)

	_, err = svc.Reject(context.Background(), d.ID, admin)
	assert.ErrorIs(t, err, ErrAlreadyProcessed)

	// The first transition remains observable.
	current, err := svc.GetByID(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusVerified, current.Status)
}

func TestRejectIsTerminalToo(t *testing.T) {
	svc, db := setupService(t, &fakeStorage{})
	admin := seedAdmin(t, db)

	d, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)

	rejected, err := svc.Reject(context.Background(), d.ID, admin)
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, rejected.Status)
	require.NotNil(t, rejected.VerifiedBy)
	require.NotNil(t, rejected.VerifiedAt)

	_, err = svc.Verify(context.Background(), d.ID, admin)
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
}

func TestVerifyMissingDonation(t *testing.T) {
	svc, db := setupService(t, &fakeStorage{})
	admin := seedAdmin(t, db)

	_, err := svc.Verify(context.Background(), 9999, admin)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVerifyUpdatesUserStatsAndNotifies(t *testing.T) {
	svc, db := setupService(t, &fakeStorage{})
	admin := seedAdmin(t, db)

	donor := auth.User{FullName: "Donor", Email: "donor@example.com", PasswordHash: "x", RoleID: admin.RoleID}
	require.NoError(t, db.Create(&donor).Error)

	input := validInput()
	input.UserID = &donor.ID
	d, err := svc.Submit(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), d.ID, admin)
	require.NoError(t, err)

	var stats UserDonationStats
	require.NoError(t, db.Where("user_id = ?", donor.ID).First(&stats).Error)
	assert.Equal(t, 2500.0, stats.TotalDonated)
	assert.Equal(t, 1, stats.DonationCount)
	require.NotNil(t, stats.LastDonationAt)

	var notifs []notification.Notification
	require.NoError(t, db.Where("user_id = ?", donor.ID).Find(&notifs).Error)
	require.Len(t, notifs, 1)
	assert.Equal(t, notification.TypeDonationVerified, notifs[0].Type)
	assert.False(t, notifs[0].IsRead)
}

func TestTopDonorsUsesVerifiedOnly(t *testing.T) {
	svc, db := setupService(t, &fakeStorage{})
	admin := seedAdmin(t, db)

	first, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)
	_, err = svc.Verify(context.Background(), first.ID, admin)
	require.NoError(t, err)

	second := validInput()
	second.DonorEmail = "pending@example.com"
	second.Amount = "9000"
	_, err = svc.Submit(context.Background(), second)
	require.NoError(t, err)

	donors, err := svc.TopDonors(context.Background())
	require.NoError(t, err)

	require.Len(t, donors, 1)
	assert.Equal(t, "asha@example.com", donors[0].DonorEmail)
	assert.Equal(t, 2500.0, donors[0].TotalAmount)
}

func TestListPendingNewestFirst(t *testing.T) {
	svc, _ := setupService(t, &fakeStorage{})

	for _, email := range []string{"one@example.com", "two@example.com", "three@example.com"} {
		input := validInput()
		input.DonorEmail = email
		_, err := svc.Submit(context.Background(), input)
		require.NoError(t, err)
	}

	pending, err := svc.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 3)
	for i := 1; i < len(pending); i++ {
		assert.True(t, !pending[i-1].CreatedAt.Before(pending[i].CreatedAt))
	}
}

func TestReceiptPDFOnlyForVerified(t *testing.T) {
	svc, db := setupService(t, &fakeStorage{})
	admin := seedAdmin(t, db)

	d, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)

	_, err = svc.ReceiptPDF(context.Background(), d.ID)
	assert.Error(t, err)

	_, err = svc.Verify(context.Background(), d.ID, admin)
	require.NoError(t, err)

	pdf, err := svc.ReceiptPDF(context.Background(), d.ID)
	require.NoError(t, err)
	assert.True(t, len(pdf) > 0)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
