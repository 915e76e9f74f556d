// Package hdkey детерминированно выводит депозитные EVM-адреса из одной мнемоники
// по схеме BIP39/BIP44 (m/44'/60'/0'/0/<index>).
package hdkey

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"
)

const DefaultBasePath = "m/44'/60'/0'/0"

var (
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
	ErrInvalidBasePath = errors.New("invalid derivation base path")
)

// Deriver держит расширенный ключ уже на базовом пути деривации; адрес ребенка
// получается одним неусиленным шагом Derive(index).
type Deriver struct {
	base *hdkeychain.ExtendedKey
}

// NewDeriver строит Deriver из мнемоники и базового пути. Валидация мнемоники и пути
// происходит здесь, один раз на старте процесса: все ошибки ключевого материала фатальны
// на этапе инициализации, а не на каждом вызове Address.
func NewDeriver(mnemonic, basePath string) (*Deriver, error) {
	if !bip39.IsMnemonicValid(strings.TrimSpace(mnemonic)) {
		return nil, ErrInvalidMnemonic
	}

	steps, pathErr := parseBasePath(basePath)
	if pathErr != nil {
		return nil, pathErr
	}

	seed := bip39.NewSeed(strings.TrimSpace(mnemonic), "")
	key, masterErr := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if masterErr != nil {
		return nil, fmt.Errorf("deriving master key: %s", masterErr.Error())
	}

	for _, step := range steps {
		childKey, childErr := key.Derive(step)
		if childErr != nil {
			return nil, fmt.Errorf("deriving base path step %d: %s", step, childErr.Error())
		}
		key = childKey
	}

	return &Deriver{base: key}, nil
}

// Address возвращает EVM-адрес ребенка на зарезервированном индексе. Деривация чистая:
// одинаковый индекс всегда дает одинаковый адрес на любом инстансе процесса.
func (d *Deriver) Address(index uint32) (string, error) {
	child, childErr := d.base.Derive(index)
	if childErr != nil {
		return "", fmt.Errorf("deriving child %d: %s", index, childErr.Error())
	}

	pubKey, pubErr := child.ECPubKey()
	if pubErr != nil {
		return "", fmt.Errorf("extracting pubkey for child %d: %s", index, pubErr.Error())
	}

	return crypto.PubkeyToAddress(*pubKey.ToECDSA()).Hex(), nil
}

// parseBasePath разбирает путь вида "m/44'/60'/0'/0" в срез шагов деривации.
// Апостроф помечает усиленный (hardened) шаг.
func parseBasePath(path string) ([]uint32, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(path), "/")
	if trimmed == "" {
		trimmed = DefaultBasePath
	}

	parts := strings.Split(trimmed, "/")
	if parts[0] != "m" || len(parts) < 2 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBasePath, path)
	}

	var steps = make([]uint32, 0, len(parts)-1)
	for _, part := range parts[1:] {
		hardened := strings.HasSuffix(part, "'")
		raw := strings.TrimSuffix(part, "'")

		value, parseErr := strconv.ParseUint(raw, 10, 31)
		if parseErr != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidBasePath, path)
		}

		step := uint32(value)
		if hardened {
			step += hdkeychain.HardenedKeyStart
		}
		steps = append(steps, step)
	}
	return steps, nil
}
