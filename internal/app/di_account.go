package app

import (
	"fmt"

	accountHTTP "github.com/allisson/mediavault/internal/account/http"
	accountRepository "github.com/allisson/mediavault/internal/account/repository"
	accountUseCase "github.com/allisson/mediavault/internal/account/usecase"
	"github.com/allisson/mediavault/internal/config"
)

// AccountRepository returns the account repository based on database driver.
func (c *Container) AccountRepository() (accountUseCase.AccountRepository, error) {
	var err error
	c.accountRepositoryInit.Do(func() {
		c.accountRepository, err = c.initAccountRepository()
		if err != nil {
			c.initErrors["accountRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["accountRepository"]; exists {
		return nil, storedErr
	}
	return c.accountRepository, nil
}

// AccountUseCase returns the account use case.
func (c *Container) AccountUseCase() (accountUseCase.AccountUseCase, error) {
	var err error
	c.accountUseCaseInit.Do(func() {
		c.accountUseCase, err = c.initAccountUseCase()
		if err != nil {
			c.initErrors["accountUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["accountUseCase"]; exists {
		return nil, storedErr
	}
	return c.accountUseCase, nil
}

// SessionProvider returns the provider that opens per-operation client configurations
// for account owners.
func (c *Container) SessionProvider() (*accountUseCase.SessionProvider, error) {
	var err error
	c.sessionProviderInit.Do(func() {
		c.sessionProvider, err = c.initSessionProvider()
		if err != nil {
			c.initErrors["sessionProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sessionProvider"]; exists {
		return nil, storedErr
	}
	return c.sessionProvider, nil
}

// AccountHandler returns the HTTP handler for account endpoints.
func (c *Container) AccountHandler() (*accountHTTP.AccountHandler, error) {
	var err error
	c.accountHandlerInit.Do(func() {
		c.accountHandler, err = c.initAccountHandler()
		if err != nil {
			c.initErrors["accountHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["accountHandler"]; exists {
		return nil, storedErr
	}
	return c.accountHandler, nil
}

// initAccountRepository creates the account repository for the configured driver.
// SQLite shares the MySQL implementation.
func (c *Container) initAccountRepository() (accountUseCase.AccountRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for account repository: %w", err)
	}

	switch c.config.DBDriver {
	case config.DriverPostgres:
		return accountRepository.NewPostgreSQLAccountRepository(db), nil
	case config.DriverMySQL, config.DriverSQLite:
		return accountRepository.NewMySQLAccountRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initAccountUseCase creates the account use case with all its dependencies.
func (c *Container) initAccountUseCase() (accountUseCase.AccountUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for account use case: %w", err)
	}

	accountRepo, err := c.AccountRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get account repository for account use case: %w", err)
	}

	cipher, err := c.EnvelopeCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get envelope cipher for account use case: %w", err)
	}

	baseUseCase := accountUseCase.NewAccountUseCase(
		txManager,
		accountRepo,
		cipher,
		c.config.CredentialsRevealEnabled,
	)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for account use case: %w", err)
		}
		return accountUseCase.NewAccountUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initSessionProvider creates the session provider over the ownership gate and materializer.
func (c *Container) initSessionProvider() (*accountUseCase.SessionProvider, error) {
	accountRepo, err := c.AccountRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get account repository for session provider: %w", err)
	}

	cipher, err := c.EnvelopeCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get envelope cipher for session provider: %w", err)
	}

	return accountUseCase.NewSessionProvider(
		accountUseCase.NewOwnershipGate(accountRepo),
		accountUseCase.NewSessionMaterializer(cipher),
	), nil
}

// initAccountHandler creates the account HTTP handler.
func (c *Container) initAccountHandler() (*accountHTTP.AccountHandler, error) {
	useCase, err := c.AccountUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get account use case for account handler: %w", err)
	}
	return accountHTTP.NewAccountHandler(useCase, c.Logger()), nil
}
