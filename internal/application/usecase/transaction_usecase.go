package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/elparadero/inventario-api/internal/application/dto"
	"github.com/elparadero/inventario-api/internal/domain"
	"github.com/elparadero/inventario-api/internal/domain/entity"
	"github.com/elparadero/inventario-api/internal/domain/repository"
	"github.com/elparadero/inventario-api/pkg/logger"
)

// TransactionUseCase registra y consulta movimientos de inventario. Los items
// referencian productos por id sin foreign key: las referencias colgantes se
// reportan al crear, no bloquean.
type TransactionUseCase struct {
	transactions repository.TransactionRepository
	products     repository.ProductRepository
	log          *logger.Logger
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(
	transactions repository.TransactionRepository,
	products repository.ProductRepository,
	log *logger.Logger,
) *TransactionUseCase {
	return &TransactionUseCase{transactions: transactions, products: products, log: log}
}

// Create registra una transacción. Devuelve en MissingProducts los ids de
// producto referenciados que no existen en el inventario.
func (uc *TransactionUseCase) Create(in dto.CreateTransactionRequest) (*dto.CreateTransactionResponse, error) {
	if in.Type != entity.TransactionEntry && in.Type != entity.TransactionExit {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	var missing []string
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		p, err := uc.products.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			missing = append(missing, item.ProductID)
		}
	}
	if len(missing) > 0 {
		uc.log.Warn().
			Strs("product_ids", missing).
			Msg("transacción con referencias a productos inexistentes")
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	number := in.TransactionNumber
	if number == "" {
		number = fmt.Sprintf("TRX-%d", now.UnixMilli())
	}
	items := make([]entity.TransactionItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, entity.TransactionItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	tx := &entity.Transaction{
		ID:                uuid.New().String(),
		TransactionNumber: number,
		Date:              date,
		Type:              in.Type,
		Items:             items,
		BuyerName:         in.BuyerName,
		SupplierName:      in.SupplierName,
		TotalAmount:       in.TotalAmount,
		CreatedAt:         now,
	}
	if err := uc.transactions.Create(tx); err != nil {
		return nil, err
	}
	return &dto.CreateTransactionResponse{
		Transaction:     *toTransactionResponse(tx),
		MissingProducts: missing,
	}, nil
}

// GetByID obtiene una transacción por ID.
func (uc *TransactionUseCase) GetByID(id string) (*dto.TransactionResponse, error) {
	tx, err := uc.transactions.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, nil
	}
	return toTransactionResponse(tx), nil
}

// List lista todas las transacciones.
func (uc *TransactionUseCase) List() (*dto.TransactionListResponse, error) {
	list, err := uc.transactions.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, tx := range list {
		items = append(items, *toTransactionResponse(tx))
	}
	return &dto.TransactionListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina una transacción por ID.
func (uc *TransactionUseCase) Delete(id string) error {
	tx, err := uc.transactions.GetByID(id)
	if err != nil {
		return err
	}
	if tx == nil {
		return domain.ErrNotFound
	}
	return uc.transactions.Delete(id)
}

func toTransactionResponse(tx *entity.Transaction) *dto.TransactionResponse {
	items := make([]dto.TransactionItemDTO, 0, len(tx.Items))
	for _, it := range tx.Items {
		items = append(items, dto.TransactionItemDTO{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return &dto.TransactionResponse{
		ID:                tx.ID,
		TransactionNumber: tx.TransactionNumber,
		Date:              tx.Date,
		Type:              tx.Type,
		Items:             items,
		BuyerName:         tx.BuyerName,
		SupplierName:      tx.SupplierName,
		TotalAmount:       tx.TotalAmount,
		CreatedAt:         tx.CreatedAt,
	}
}
