package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/fsdevblog/qvest/internal/domain"
	"github.com/fsdevblog/qvest/internal/repository/repoargs"
	"github.com/fsdevblog/qvest/pkg/uow"
)

// CounterKey ключ глобального счетчика индексов деривации в sys_counters.
const CounterKey = "deposit_address_index"

// AllocatorService выдача депозитных адресов. Каждому identity навсегда закрепляется
// один адрес, детерминированно выведенный из общего кошелька по глобальному
// монотонному индексу. Индекс никогда не переиспользуется, даже если транзакция
// выдачи откатилась.
type AllocatorService struct {
	uow            uow.UOW
	allocationRepo AllocationRepository
	deriver        AddressDeriver
	startIndex     int64
}

func NewAllocatorService(u uow.UOW, deriver AddressDeriver, startIndex int64) (*AllocatorService, error) {
	allocationRepo, allocErr :=
		uow.GetRepositoryAs[AllocationRepository](u, uow.RepositoryName(repoargs.AllocationRepoName))
	if allocErr != nil {
		return nil, allocErr
	}
	return &AllocatorService{
		uow:            u,
		allocationRepo: allocationRepo,
		deriver:        deriver,
		startIndex:     startIndex,
	}, nil
}

// Allocate возвращает депозитный адрес identity, выдавая новый при первом обращении.
//
// Алгоритм работы:
//  1. Быстрый путь: существующая выдача возвращается без транзакции.
//  2. Иначе в сериализуемой транзакции: повторная проверка выдачи, резервирование
//     следующего индекса глобального счетчика, деривация адреса, запись выдачи.
//     Конфликт сериализации повторяется на уровне UOW.
//  3. Гонка двух первых обращений разрешается уникальным индексом по identity:
//     проигравший получает дубликат и перечитывает запись победителя. Индекс
//     проигравшего остается сожженным.
func (a *AllocatorService) Allocate(ctx context.Context, identity string) (*domain.Allocation, error) {
	existing, findErr := a.allocationRepo.FindByIdentity(ctx, identity)
	if findErr == nil {
		return existing, nil
	}
	if !errors.Is(findErr, domain.ErrRecordNotFound) {
		return nil, fmt.Errorf("allocating deposit address: %w", findErr)
	}

	var allocation *domain.Allocation

	txErr := a.uow.DoSerializable(ctx, func(c context.Context, tx uow.TX) error {
		allocationRepo, allocErr :=
			uow.GetAs[AllocationRepository](tx, uow.RepositoryName(repoargs.AllocationRepoName))
		if allocErr != nil {
			return allocErr //nolint:wrapcheck
		}
		counterRepo, counterErr := uow.GetAs[CounterRepository](tx, uow.RepositoryName(repoargs.CounterRepoName))
		if counterErr != nil {
			return counterErr //nolint:wrapcheck
		}

		txExisting, txFindErr := allocationRepo.FindByIdentity(c, identity)
		if txFindErr == nil {
			allocation = txExisting
			return nil
		}
		if !errors.Is(txFindErr, domain.ErrRecordNotFound) {
			return txFindErr //nolint:wrapcheck
		}

		index, reserveErr := counterRepo.ReserveNextIndex(c, CounterKey, a.startIndex)
		if reserveErr != nil {
			return reserveErr //nolint:wrapcheck
		}
		if index < 0 || index > math.MaxUint32 {
			return fmt.Errorf("%w: derivation index %d out of range", domain.ErrUnknown, index)
		}

		address, deriveErr := a.deriver.Address(uint32(index))
		if deriveErr != nil {
			return fmt.Errorf("deriving address at index %d: %w", index, deriveErr)
		}

		created, createErr := allocationRepo.Create(c, repoargs.CreateAllocation{
			Identity:        identity,
			DerivationIndex: index,
			Address:         address,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}
		allocation = created
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, domain.ErrDuplicateKey) {
			return a.allocationRepo.FindByIdentity(ctx, identity) //nolint:wrapcheck
		}
		return nil, fmt.Errorf("allocating deposit address: %w", txErr)
	}
	return allocation, nil
}
