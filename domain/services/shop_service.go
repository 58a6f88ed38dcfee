package services

import (
	"context"
	"fmt"

	"casino/domain/entities"
	"casino/domain/interfaces"
)

type shopService struct {
	accountRepo   interfaces.AccountRepository
	txRepo        interfaces.TransactionRepository
	inventoryRepo interfaces.InventoryRepository
	settingsRepo  interfaces.GuildSettingsRepository
}

// NewShopService creates a shop service over the static catalogue
func NewShopService(
	accountRepo interfaces.AccountRepository,
	txRepo interfaces.TransactionRepository,
	inventoryRepo interfaces.InventoryRepository,
	settingsRepo interfaces.GuildSettingsRepository,
) interfaces.ShopService {
	return &shopService{
		accountRepo:   accountRepo,
		txRepo:        txRepo,
		inventoryRepo: inventoryRepo,
		settingsRepo:  settingsRepo,
	}
}

func (s *shopService) Purchase(ctx context.Context, userID int64, itemID string, quantity int64) (*entities.ShopReceipt, error) {
	if quantity <= 0 {
		return nil, entities.NewValidationError("quantity must be positive")
	}

	settings, err := s.settingsRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load guild settings: %w", err)
	}
	if !settings.ShopEnabled {
		return nil, entities.NewValidationError("the shop is disabled in this server")
	}

	item, ok := entities.ShopCatalogue[itemID]
	if !ok {
		return nil, entities.ErrNotFound
	}

	if _, err := s.accountRepo.GetOrCreate(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	// Lock the account row so concurrent purchases serialize; otherwise
	// two transactions could both pass the ownership-cap check below.
	if _, err := s.accountRepo.GetByUserForUpdate(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}

	if !item.Unlimited() {
		owned, err := s.inventoryRepo.Get(ctx, userID, itemID)
		if err != nil {
			return nil, fmt.Errorf("failed to check inventory: %w", err)
		}
		if owned+quantity > int64(item.MaxQuantity) {
			return nil, &entities.LimitExceededError{
				Reason: fmt.Sprintf("you can only own %d of %s (you have %d)", item.MaxQuantity, item.Name, owned),
			}
		}
	}

	total := item.Price * quantity
	newBalance, err := s.accountRepo.AdjustBalance(ctx, userID, item.Currency, -total)
	if err != nil {
		return nil, err
	}
	tx := entities.NewTransaction(userID, entities.TransactionTypeDebit, item.Currency, total, fmt.Sprintf("purchased %dx %s", quantity, item.Name))
	if err := s.txRepo.Record(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to record purchase: %w", err)
	}

	owned, err := s.inventoryRepo.AdjustQuantity(ctx, userID, itemID, quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to add %s to inventory: %w", itemID, err)
	}

	return &entities.ShopReceipt{
		Item:       item,
		Quantity:   quantity,
		Total:      total,
		NewBalance: newBalance,
		Owned:      owned,
	}, nil
}

func (s *shopService) Sell(ctx context.Context, userID int64, itemID string, quantity int64) (*entities.ShopReceipt, error) {
	if quantity <= 0 {
		return nil, entities.NewValidationError("quantity must be positive")
	}

	item, ok := entities.ShopCatalogue[itemID]
	if !ok {
		return nil, entities.ErrNotFound
	}

	owned, err := s.inventoryRepo.Get(ctx, userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to check inventory: %w", err)
	}
	if owned < quantity {
		return nil, entities.NewValidationError("you only have %d of %s", owned, item.Name)
	}

	remaining, err := s.inventoryRepo.AdjustQuantity(ctx, userID, itemID, -quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to remove %s from inventory: %w", itemID, err)
	}

	refund := item.SellPrice() * quantity
	newBalance, err := s.accountRepo.AdjustBalance(ctx, userID, item.Currency, refund)
	if err != nil {
		return nil, fmt.Errorf("failed to credit sale: %w", err)
	}
	tx := entities.NewTransaction(userID, entities.TransactionTypeCredit, item.Currency, refund, fmt.Sprintf("sold %dx %s", quantity, item.Name))
	if err := s.txRepo.Record(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}

	return &entities.ShopReceipt{
		Item:       item,
		Quantity:   quantity,
		Total:      refund,
		NewBalance: newBalance,
		Owned:      remaining,
	}, nil
}

func (s *shopService) Inventory(ctx context.Context, userID int64) ([]*entities.InventoryEntry, error) {
	entries, err := s.inventoryRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return entries, nil
}
