package hdkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// известная тестовая мнемоника (hardhat/ganache), адреса на стандартном пути задокументированы
const testMnemonic = "test test test test test test test test test test test junk"

func TestDeriver_KnownVectors(t *testing.T) {
	deriver, err := NewDeriver(testMnemonic, DefaultBasePath)
	require.NoError(t, err)

	testCases := []struct {
		index   uint32
		address string
	}{
		{index: 0, address: "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"},
		{index: 1, address: "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"},
		{index: 2, address: "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"},
	}
	for _, tc := range testCases {
		got, deriveErr := deriver.Address(tc.index)
		require.NoError(t, deriveErr)
		assert.Equal(t, tc.address, got, "index %d", tc.index)
	}
}

func TestDeriver_Deterministic(t *testing.T) {
	first, err := NewDeriver(testMnemonic, DefaultBasePath)
	require.NoError(t, err)
	second, err := NewDeriver(testMnemonic, DefaultBasePath)
	require.NoError(t, err)

	a1, err := first.Address(42)
	require.NoError(t, err)
	a2, err := second.Address(42)
	require.NoError(t, err)
	assert.Equal(t, a1, a2)
}

func TestNewDeriver_InvalidMnemonic(t *testing.T) {
	_, err := NewDeriver("definitely not a mnemonic", DefaultBasePath)
	assert.ErrorIs(t, err, ErrInvalidMnemonic)
}

func TestNewDeriver_InvalidBasePath(t *testing.T) {
	testCases := []string{
		"44'/60'/0'/0", // нет префикса m
		"m/foo/60'",
		"m",
	}
	for _, path := range testCases {
		_, err := NewDeriver(testMnemonic, path)
		assert.ErrorIs(t, err, ErrInvalidBasePath, "path %q", path)
	}
}

func TestNewDeriver_EmptyPathUsesDefault(t *testing.T) {
	deriver, err := NewDeriver(testMnemonic, "")
	require.NoError(t, err)

	got, err := deriver.Address(0)
	require.NoError(t, err)
	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", got)
}
