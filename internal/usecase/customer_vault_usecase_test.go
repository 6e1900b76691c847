package usecase

import (
	"context"
	"errors"
	"testing"

	"pede_facil/internal/domain/entities"
	"pede_facil/internal/usecase/interfaces"
	mock_interfaces "pede_facil/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCustomerVaultUseCase_FindOrCreate(t *testing.T) {
	t.Run("empty email", func(t *testing.T) {
		uc := NewCustomerVaultUseCase(nil, nil)
		_, err := uc.FindOrCreate(context.Background(), "   ")
		var validationErr *entities.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("local mapping hit skips the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockICustomerGateway(ctrl)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerVaultUseCase(gateway, repo)

		// No gateway expectations: a known mapping must not trigger any
		// upstream call.
		repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").
			Return(entities.Customer{ExternalID: "cus-1", Email: "ana@example.com"}, nil)

		customer, err := uc.FindOrCreate(context.Background(), " Ana@Example.com ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if customer.ExternalID != "cus-1" {
			t.Fatalf("unexpected result: %+v", customer)
		}
	})

	t.Run("local lookup failure falls through to the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockICustomerGateway(ctrl)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerVaultUseCase(gateway, repo)

		repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").
			Return(entities.Customer{}, errors.New("table unavailable"))
		gateway.EXPECT().CreateCustomer(gomock.Any(), "ana@example.com").
			Return(interfaces.GatewayCustomer{ExternalID: "cus-1", Email: "ana@example.com"}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) { return c, nil },
		)

		customer, err := uc.FindOrCreate(context.Background(), "ana@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if customer.ExternalID != "cus-1" {
			t.Fatalf("unexpected result: %+v", customer)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockICustomerGateway(ctrl)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerVaultUseCase(gateway, repo)

		repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").
			Return(entities.Customer{}, nil)
		gateway.EXPECT().CreateCustomer(gomock.Any(), "ana@example.com").
			Return(interfaces.GatewayCustomer{ExternalID: "cus-1", Email: "ana@example.com"}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.ExternalID != "cus-1" || c.Email != "ana@example.com" {
					t.Fatalf("unexpected customer: %+v", c)
				}
				if c.CreatedAt.IsZero() {
					t.Fatalf("expected created at timestamp")
				}
				return c, nil
			},
		)

		customer, err := uc.FindOrCreate(context.Background(), " Ana@Example.com ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if customer.ExternalID != "cus-1" {
			t.Fatalf("unexpected result: %+v", customer)
		}
	})

	t.Run("already exists falls back to search", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockICustomerGateway(ctrl)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerVaultUseCase(gateway, repo)

		repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").
			Return(entities.Customer{}, nil)
		gateway.EXPECT().CreateCustomer(gomock.Any(), "ana@example.com").
			Return(interfaces.GatewayCustomer{}, &interfaces.GatewayError{StatusCode: 400, Message: "customer already exists", CauseCodes: []int{101}})
		gateway.EXPECT().SearchCustomerByEmail(gomock.Any(), "ana@example.com").
			Return(interfaces.GatewayCustomer{ExternalID: "cus-1", Email: "ana@example.com"}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) { return c, nil },
		)

		customer, err := uc.FindOrCreate(context.Background(), "ana@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if customer.ExternalID != "cus-1" {
			t.Fatalf("unexpected result: %+v", customer)
		}
	})

	t.Run("duplicate reported but search empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockICustomerGateway(ctrl)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerVaultUseCase(gateway, repo)

		repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").
			Return(entities.Customer{}, nil)
		gateway.EXPECT().CreateCustomer(gomock.Any(), "ana@example.com").
			Return(interfaces.GatewayCustomer{}, &interfaces.GatewayError{StatusCode: 400, CauseCodes: []int{101}})
		gateway.EXPECT().SearchCustomerByEmail(gomock.Any(), "ana@example.com").
			Return(interfaces.GatewayCustomer{}, nil)

		_, err := uc.FindOrCreate(context.Background(), "ana@example.com")
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockICustomerGateway(ctrl)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerVaultUseCase(gateway, repo)

		repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").
			Return(entities.Customer{}, nil)
		gateway.EXPECT().CreateCustomer(gomock.Any(), "ana@example.com").
			Return(interfaces.GatewayCustomer{}, &interfaces.GatewayError{StatusCode: 401, Message: "invalid access token"})

		_, err := uc.FindOrCreate(context.Background(), "ana@example.com")
		if !errors.Is(err, ErrGatewayUnauthorized) {
			t.Fatalf("expected ErrGatewayUnauthorized, got %v", err)
		}
	})
}

func TestCustomerVaultUseCase_SearchByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockICustomerGateway(ctrl)
		uc := NewCustomerVaultUseCase(gateway, nil)

		gateway.EXPECT().SearchCustomerByEmail(gomock.Any(), "ana@example.com").
			Return(interfaces.GatewayCustomer{ExternalID: "cus-1", Email: "ana@example.com"}, nil)

		customer, err := uc.SearchByEmail(context.Background(), "ANA@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if customer.ExternalID != "cus-1" {
			t.Fatalf("unexpected result: %+v", customer)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockICustomerGateway(ctrl)
		uc := NewCustomerVaultUseCase(gateway, nil)

		gateway.EXPECT().SearchCustomerByEmail(gomock.Any(), "ana@example.com").
			Return(interfaces.GatewayCustomer{}, nil)

		_, err := uc.SearchByEmail(context.Background(), "ana@example.com")
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})
}

func TestCustomerVaultUseCase_Update(t *testing.T) {
	t.Run("success passes the patch through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockICustomerGateway(ctrl)
		uc := NewCustomerVaultUseCase(gateway, nil)

		patch := interfaces.CustomerPatch{Email: "ana.souza@example.com", FirstName: "Ana", LastName: "Souza"}
		gateway.EXPECT().UpdateCustomer(gomock.Any(), "cus-1", patch).
			Return(interfaces.GatewayCustomer{ExternalID: "cus-1", Email: "ana.souza@example.com"}, nil)

		customer, err := uc.Update(context.Background(), " cus-1 ", patch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if customer.ExternalID != "cus-1" || customer.Email != "ana.souza@example.com" {
			t.Fatalf("unexpected result: %+v", customer)
		}
	})

	t.Run("gateway 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockICustomerGateway(ctrl)
		uc := NewCustomerVaultUseCase(gateway, nil)

		gateway.EXPECT().UpdateCustomer(gomock.Any(), "cus-9", gomock.Any()).
			Return(interfaces.GatewayCustomer{}, &interfaces.GatewayError{StatusCode: 404, Message: "customer not found"})

		_, err := uc.Update(context.Background(), "cus-9", interfaces.CustomerPatch{FirstName: "Ana"})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		uc := NewCustomerVaultUseCase(nil, nil)
		_, err := uc.Update(context.Background(), "  ", interfaces.CustomerPatch{})
		var validationErr *entities.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})
}

func TestCustomerVaultUseCase_GetByID(t *testing.T) {
	t.Run("gateway 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockICustomerGateway(ctrl)
		uc := NewCustomerVaultUseCase(gateway, nil)

		gateway.EXPECT().GetCustomer(gomock.Any(), "cus-9").
			Return(interfaces.GatewayCustomer{}, &interfaces.GatewayError{StatusCode: 404, Message: "customer not found"})

		_, err := uc.GetByID(context.Background(), "cus-9")
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockICustomerGateway(ctrl)
		uc := NewCustomerVaultUseCase(gateway, nil)

		gateway.EXPECT().GetCustomer(gomock.Any(), "cus-1").
			Return(interfaces.GatewayCustomer{ExternalID: "cus-1", Email: "ana@example.com"}, nil)

		customer, err := uc.GetByID(context.Background(), " cus-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if customer.Email != "ana@example.com" {
			t.Fatalf("unexpected result: %+v", customer)
		}
	})
}
