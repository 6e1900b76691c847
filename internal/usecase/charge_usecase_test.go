package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pede_facil/internal/domain/entities"
	"pede_facil/internal/usecase/interfaces"
	mock_interfaces "pede_facil/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestChargeUseCase_ChargeNewCard(t *testing.T) {
	t.Run("accumulates all violations", func(t *testing.T) {
		uc := NewChargeUseCase(nil, nil, nil)

		_, err := uc.ChargeNewCard(context.Background(), NewCardChargeInput{})
		var validationErr *entities.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if len(validationErr.Violations) != 6 {
			t.Fatalf("expected 6 violations, got %v", validationErr.Violations)
		}
	})

	t.Run("mints idempotency key when absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIChargeGateway(ctrl)
		uc := NewChargeUseCase(gateway, nil, nil)

		var capturedKey string
		gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sub interfaces.ChargeSubmission, key string) (interfaces.ChargeResult, error) {
				capturedKey = key
				if sub.PayerEmail != "ana@example.com" {
					t.Fatalf("expected normalized payer email, got %q", sub.PayerEmail)
				}
				if len(sub.Items) != 1 || sub.Items[0].UnitPrice != 100.5 {
					t.Fatalf("unexpected items: %+v", sub.Items)
				}
				return interfaces.ChargeResult{PaymentID: "pay-1", Status: "approved", Amount: 100.5}, nil
			},
		)

		p, err := uc.ChargeNewCard(context.Background(), NewCardChargeInput{
			Amount: 100.5, Description: "order 42", PayerEmail: " Ana@Example.com ",
			Token: "tok-1", PaymentMethodID: "visa", Installments: 1,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(capturedKey, "card-payment-") {
			t.Fatalf("unexpected idempotency key: %s", capturedKey)
		}
		if p.Status != entities.PaymentStatusApproved || p.Method != entities.PaymentMethodCard {
			t.Fatalf("unexpected payment: %+v", p)
		}
		if p.IdempotencyKey != capturedKey {
			t.Fatalf("key not surfaced on the payment: %+v", p)
		}
	})

	t.Run("passes caller key through unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIChargeGateway(ctrl)
		uc := NewChargeUseCase(gateway, nil, nil)

		gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any(), "card-payment-1716913000123-k2j9x0a4q").
			Return(interfaces.ChargeResult{PaymentID: "pay-1", Status: "approved"}, nil)

		_, err := uc.ChargeNewCard(context.Background(), NewCardChargeInput{
			Amount: 10, Description: "order", PayerEmail: "a@b.com",
			Token: "tok-1", PaymentMethodID: "visa", Installments: 1,
			IdempotencyKey: "card-payment-1716913000123-k2j9x0a4q",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("translates invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIChargeGateway(ctrl)
		uc := NewChargeUseCase(gateway, nil, nil)

		gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.ChargeResult{}, &interfaces.GatewayError{StatusCode: 400, Message: "invalid_token"})

		_, err := uc.ChargeNewCard(context.Background(), NewCardChargeInput{
			Amount: 10, Description: "order", PayerEmail: "a@b.com",
			Token: "tok-old", PaymentMethodID: "visa", Installments: 1,
		})
		if !errors.Is(err, ErrPayment) {
			t.Fatalf("expected ErrPayment, got %v", err)
		}
		if !strings.Contains(err.Error(), "tokenize again") {
			t.Fatalf("expected translated message, got %v", err)
		}
	})

	t.Run("transient gateway failure passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIChargeGateway(ctrl)
		uc := NewChargeUseCase(gateway, nil, nil)

		gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.ChargeResult{}, interfaces.ErrGatewayUnavailable)

		_, err := uc.ChargeNewCard(context.Background(), NewCardChargeInput{
			Amount: 10, Description: "order", PayerEmail: "a@b.com",
			Token: "tok-1", PaymentMethodID: "visa", Installments: 1,
		})
		if !errors.Is(err, interfaces.ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}
	})
}

func TestChargeUseCase_ChargePix(t *testing.T) {
	t.Run("sets ten minute expiration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIChargeGateway(ctrl)
		uc := NewChargeUseCase(gateway, nil, nil)

		before := time.Now()
		var captured interfaces.ChargeSubmission
		gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sub interfaces.ChargeSubmission, key string) (interfaces.ChargeResult, error) {
				captured = sub
				if !strings.HasPrefix(key, "pix-payment-") {
					t.Fatalf("unexpected idempotency key: %s", key)
				}
				return interfaces.ChargeResult{
					PaymentID: "pay-1", Status: "pending", Amount: 50,
					QRCode: "qr-data", QRCodeBase64: "cXItZGF0YQ==", TicketURL: "https://pay.example/t/1",
				}, nil
			},
		)

		p, err := uc.ChargePix(context.Background(), PixChargeInput{
			Amount: 50, Description: "order 42", PayerEmail: "ana@example.com",
			PayerFirstName: "Ana", PayerLastName: "Souza", PayerCPF: "123.456.789-09",
			PayerAddress: &interfaces.PayerAddress{
				ZipCode: "01310-100", StreetName: "Av. Paulista", StreetNumber: "1578",
				Neighborhood: "Bela Vista", City: "São Paulo", FederalUnit: "SP",
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if captured.PaymentMethodID != "pix" {
			t.Fatalf("expected pix method, got %s", captured.PaymentMethodID)
		}
		if captured.PayerCPF != "12345678909" {
			t.Fatalf("expected digits-only CPF, got %s", captured.PayerCPF)
		}
		if captured.PayerAddress == nil || captured.PayerAddress.ZipCode != "01310-100" || captured.PayerAddress.City != "São Paulo" {
			t.Fatalf("expected payer address on the submission, got %+v", captured.PayerAddress)
		}
		if captured.DateOfExpiration == nil {
			t.Fatalf("expected expiration to be set")
		}
		lifetime := captured.DateOfExpiration.Sub(before)
		if lifetime < 9*time.Minute || lifetime > 11*time.Minute {
			t.Fatalf("expected ~10m lifetime, got %s", lifetime)
		}

		if p.Method != entities.PaymentMethodPix || p.Pix == nil {
			t.Fatalf("unexpected payment: %+v", p)
		}
		if p.Pix.QRCode != "qr-data" || p.Pix.ExpiresAt == nil {
			t.Fatalf("unexpected pix details: %+v", p.Pix)
		}
	})

	t.Run("missing payer email", func(t *testing.T) {
		uc := NewChargeUseCase(nil, nil, nil)
		_, err := uc.ChargePix(context.Background(), PixChargeInput{Amount: 50, Description: "order"})
		var validationErr *entities.ValidationError
		if !errors.As(err, &validationErr) || !validationErr.Contains("payer email") {
			t.Fatalf("expected payer email violation, got %v", err)
		}
	})
}

func TestChargeUseCase_ChargeSavedCard(t *testing.T) {
	t.Run("unknown customer aborts before tokenization", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIChargeGateway(ctrl)
		customers := mock_interfaces.NewMockICustomerGateway(ctrl)
		tokenizer := NewTokenizerUseCase(mock_interfaces.NewMockICardTokenGateway(ctrl))
		uc := NewChargeUseCase(gateway, customers, tokenizer)

		customers.EXPECT().GetCustomer(gomock.Any(), "cus-9").
			Return(interfaces.GatewayCustomer{}, &interfaces.GatewayError{StatusCode: 404, Message: "customer not found"})

		_, err := uc.ChargeSavedCard(context.Background(), SavedCardChargeInput{
			Amount: 30, Description: "order", CustomerExternalID: "cus-9",
			CardExternalID: "card-1", SecurityCode: "123",
		})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("success submits as vaulted customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIChargeGateway(ctrl)
		customers := mock_interfaces.NewMockICustomerGateway(ctrl)
		tokenGateway := mock_interfaces.NewMockICardTokenGateway(ctrl)
		uc := NewChargeUseCase(gateway, customers, NewTokenizerUseCase(tokenGateway))

		customers.EXPECT().GetCustomer(gomock.Any(), "cus-1").
			Return(interfaces.GatewayCustomer{ExternalID: "cus-1"}, nil)
		tokenGateway.EXPECT().CreateSavedCardToken(gomock.Any(), interfaces.SavedCardTokenInput{
			CardExternalID: "card-1", SecurityCode: "123",
		}).Return(interfaces.TokenResult{Token: "tok-1"}, nil)
		gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, sub interfaces.ChargeSubmission, key string) (interfaces.ChargeResult, error) {
				if sub.PayerType != "customer" || sub.PayerID != "cus-1" || sub.Token != "tok-1" {
					t.Fatalf("unexpected submission: %+v", sub)
				}
				if !strings.HasPrefix(key, "saved-card-payment-") {
					t.Fatalf("unexpected idempotency key: %s", key)
				}
				return interfaces.ChargeResult{PaymentID: "pay-1", Status: "approved", Amount: 30}, nil
			},
		)

		p, err := uc.ChargeSavedCard(context.Background(), SavedCardChargeInput{
			Amount: 30, Description: "order", CustomerExternalID: " cus-1 ",
			CardExternalID: "card-1", SecurityCode: "123",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "pay-1" || p.Method != entities.PaymentMethodCard {
			t.Fatalf("unexpected payment: %+v", p)
		}
	})

	t.Run("tokenization failure aborts the charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIChargeGateway(ctrl)
		customers := mock_interfaces.NewMockICustomerGateway(ctrl)
		tokenGateway := mock_interfaces.NewMockICardTokenGateway(ctrl)
		uc := NewChargeUseCase(gateway, customers, NewTokenizerUseCase(tokenGateway))

		customers.EXPECT().GetCustomer(gomock.Any(), "cus-1").
			Return(interfaces.GatewayCustomer{ExternalID: "cus-1"}, nil)
		tokenGateway.EXPECT().CreateSavedCardToken(gomock.Any(), gomock.Any()).
			Return(interfaces.TokenResult{}, &interfaces.GatewayError{StatusCode: 400, Message: "invalid_security_code"})

		_, err := uc.ChargeSavedCard(context.Background(), SavedCardChargeInput{
			Amount: 30, Description: "order", CustomerExternalID: "cus-1",
			CardExternalID: "card-1", SecurityCode: "123",
		})
		if !errors.Is(err, ErrTokenization) {
			t.Fatalf("expected ErrTokenization, got %v", err)
		}
	})
}
