package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keyring_service_mock.go -package=mock

// KeyringService отвечает за криптографический материал учётных данных
// расшифровки. Он не знает ничего о сети, реестре или хранилище.
// Его единственная задача — генерировать эфемерные ключи и строить
// дайджест области действия, который подписывает кошелёк пользователя.
//
// Схема работы:
//
//	pub, priv = GenerateKeypair()                         (Шаг 1)
//	digest    = ScopeDigest(pub, contracts, user, ...)    (Шаг 2)
//	signature = Signer.SignScope(digest)                  (Шаг 3, вне пакета)
type KeyringService interface {
	// GenerateKeypair генерирует эфемерную пару ключей NaCl box
	// (32 байта / 256 бит каждый). Закрытый ключ никогда не покидает
	// клиента; открытый ключ входит в подписываемый дайджест.
	// Шаг 1.
	GenerateKeypair() (publicKey, privateKey []byte, err error)

	// ScopeDigest строит детерминированный keccak256-дайджест области
	// действия учётных данных: открытый ключ, адрес пользователя,
	// отсортированный список контрактов и временное окно. Один и тот же
	// набор аргументов всегда даёт один и тот же дайджест.
	// Шаг 2.
	ScopeDigest(req ScopeRequest) []byte
}
