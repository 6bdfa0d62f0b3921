package service

import (
	"github.com/MKhiriev/go-help-crypt/internal/adapter"
	"github.com/MKhiriev/go-help-crypt/internal/config"
	"github.com/MKhiriev/go-help-crypt/internal/crypto"
	"github.com/MKhiriev/go-help-crypt/internal/gateway"
	"github.com/MKhiriev/go-help-crypt/internal/logger"
	"github.com/MKhiriev/go-help-crypt/internal/store"
)

type Services struct {
	Resolver     ContractResolver
	Existence    ExistenceChecker
	Registry     ApplicationRegistry
	Credentials  CredentialManager
	Orchestrator WorkflowOrchestrator
}

func NewServices(
	cfg config.ClientConfig,
	storages *store.ClientStorages,
	ledger adapter.LedgerAdapter,
	gw gateway.Gateway,
	signer adapter.Signer,
	keyring crypto.KeyringService,
	log *logger.Logger,
) *Services {
	resolver := NewContractResolver(cfg.Chain.AddressBook, cfg.Chain.ID, cfg.Chain.Name)
	existence := NewExistenceChecker(ledger, log)
	registry := NewApplicationRegistry(resolver, existence, ledger, cfg.Chain.ID, log)
	credentials := NewCredentialManager(keyring, signer, storages.Credentials, cfg.App.CredentialDays, log)

	return &Services{
		Resolver:     resolver,
		Existence:    existence,
		Registry:     registry,
		Credentials:  credentials,
		Orchestrator: NewWorkflowOrchestrator(
			ledger, gw, signer,
			resolver, existence, registry, credentials,
			storages.OperationLog, cfg.Chain.ID, log,
		),
	}
}
