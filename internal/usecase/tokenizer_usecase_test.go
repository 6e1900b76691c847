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

func TestTokenizerUseCase_TokenizeNewCard(t *testing.T) {
	t.Run("accumulates all violations", func(t *testing.T) {
		uc := NewTokenizerUseCase(nil)

		_, err := uc.TokenizeNewCard(context.Background(), NewCardInput{
			Number:     "123",
			ExpMonth:   13,
			ExpYear:    2030,
			CVV:        "12",
			HolderName: "J",
		})
		var validationErr *entities.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if len(validationErr.Violations) != 4 {
			t.Fatalf("expected 4 violations, got %d: %v", len(validationErr.Violations), validationErr.Violations)
		}
		if !validationErr.Contains("card number") || !validationErr.Contains("expiration month") ||
			!validationErr.Contains("security code") || !validationErr.Contains("holder name") {
			t.Fatalf("unexpected violations: %v", validationErr.Violations)
		}
	})

	t.Run("accepts two digit year", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockICardTokenGateway(ctrl)
		uc := NewTokenizerUseCase(gateway)

		gateway.EXPECT().CreateCardToken(gomock.Any(), interfaces.NewCardTokenInput{
			Number: "4111111111111111", ExpMonth: 12, ExpYear: 99, CVV: "123", HolderName: "JOHN DOE",
		}).Return(interfaces.TokenResult{Token: "tok-1", First6: "411111", Last4: "1111", ExpMonth: 12, ExpYear: 99}, nil)

		res, err := uc.TokenizeNewCard(context.Background(), NewCardInput{
			Number: "4111 1111 1111 1111", ExpMonth: 12, ExpYear: 99, CVV: "123", HolderName: " JOHN DOE ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Token != "tok-1" || res.Last4 != "1111" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("translates invalid card number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockICardTokenGateway(ctrl)
		uc := NewTokenizerUseCase(gateway)

		gateway.EXPECT().CreateCardToken(gomock.Any(), gomock.Any()).
			Return(interfaces.TokenResult{}, &interfaces.GatewayError{StatusCode: 400, Message: "invalid_card_number"})

		_, err := uc.TokenizeNewCard(context.Background(), NewCardInput{
			Number: "4111111111111111", ExpMonth: 12, ExpYear: 2030, CVV: "123", HolderName: "JOHN DOE",
		})
		if !errors.Is(err, ErrTokenization) {
			t.Fatalf("expected ErrTokenization, got %v", err)
		}
	})

	t.Run("unauthorized credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockICardTokenGateway(ctrl)
		uc := NewTokenizerUseCase(gateway)

		gateway.EXPECT().CreateCardToken(gomock.Any(), gomock.Any()).
			Return(interfaces.TokenResult{}, &interfaces.GatewayError{StatusCode: 401, Message: "invalid credentials"})

		_, err := uc.TokenizeNewCard(context.Background(), NewCardInput{
			Number: "4111111111111111", ExpMonth: 12, ExpYear: 2030, CVV: "123", HolderName: "JOHN DOE",
		})
		if !errors.Is(err, ErrGatewayUnauthorized) {
			t.Fatalf("expected ErrGatewayUnauthorized, got %v", err)
		}
	})
}

func TestTokenizerUseCase_TokenizeSavedCard(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc := NewTokenizerUseCase(nil)

		_, err := uc.TokenizeSavedCard(context.Background(), "  ", "12")
		var validationErr *entities.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if len(validationErr.Violations) != 2 {
			t.Fatalf("expected 2 violations, got %v", validationErr.Violations)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockICardTokenGateway(ctrl)
		uc := NewTokenizerUseCase(gateway)

		gateway.EXPECT().CreateSavedCardToken(gomock.Any(), interfaces.SavedCardTokenInput{
			CardExternalID: "card-1", SecurityCode: "123",
		}).Return(interfaces.TokenResult{Token: "tok-2"}, nil)

		res, err := uc.TokenizeSavedCard(context.Background(), " card-1 ", "123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Token != "tok-2" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("translates invalid security code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockICardTokenGateway(ctrl)
		uc := NewTokenizerUseCase(gateway)

		gateway.EXPECT().CreateSavedCardToken(gomock.Any(), gomock.Any()).
			Return(interfaces.TokenResult{}, &interfaces.GatewayError{StatusCode: 400, Message: "invalid_security_code"})

		_, err := uc.TokenizeSavedCard(context.Background(), "card-1", "123")
		if !errors.Is(err, ErrTokenization) {
			t.Fatalf("expected ErrTokenization, got %v", err)
		}
	})
}
