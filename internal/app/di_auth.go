package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/mediavault/internal/auth/http"
	authRepository "github.com/allisson/mediavault/internal/auth/repository"
	authService "github.com/allisson/mediavault/internal/auth/service"
	authUseCase "github.com/allisson/mediavault/internal/auth/usecase"
	"github.com/allisson/mediavault/internal/config"
	userHTTP "github.com/allisson/mediavault/internal/user/http"
	userRepository "github.com/allisson/mediavault/internal/user/repository"
	userUseCase "github.com/allisson/mediavault/internal/user/usecase"
)

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() (authService.PasswordService, error) {
	var err error
	c.passwordServiceInit.Do(func() {
		c.passwordService, err = c.initPasswordService()
		if err != nil {
			c.initErrors["passwordService"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["passwordService"]; exists {
		return nil, storedErr
	}
	return c.passwordService, nil
}

// TokenService returns the token service for authentication operations.
func (c *Container) TokenService() authService.TokenService {
	c.tokenServiceInit.Do(func() {
		c.tokenService = authService.NewTokenService()
	})
	return c.tokenService
}

// UserRepository returns the user repository based on database driver.
func (c *Container) UserRepository() (userUseCase.UserRepository, error) {
	var err error
	c.userRepositoryInit.Do(func() {
		c.userRepository, err = c.initUserRepository()
		if err != nil {
			c.initErrors["userRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userRepository"]; exists {
		return nil, storedErr
	}
	return c.userRepository, nil
}

// TokenRepository returns the token repository based on database driver.
func (c *Container) TokenRepository() (authUseCase.TokenRepository, error) {
	var err error
	c.tokenRepositoryInit.Do(func() {
		c.tokenRepository, err = c.initTokenRepository()
		if err != nil {
			c.initErrors["tokenRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenRepository"]; exists {
		return nil, storedErr
	}
	return c.tokenRepository, nil
}

// UserUseCase returns the user use case.
func (c *Container) UserUseCase() (userUseCase.UseCase, error) {
	var err error
	c.userUseCaseInit.Do(func() {
		c.userUseCase, err = c.initUserUseCase()
		if err != nil {
			c.initErrors["userUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.userUseCase, nil
}

// TokenUseCase returns the token use case.
func (c *Container) TokenUseCase() (authUseCase.TokenUseCase, error) {
	var err error
	c.tokenUseCaseInit.Do(func() {
		c.tokenUseCase, err = c.initTokenUseCase()
		if err != nil {
			c.initErrors["tokenUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenUseCase"]; exists {
		return nil, storedErr
	}
	return c.tokenUseCase, nil
}

// UserHandler returns the HTTP handler for user sign-up.
func (c *Container) UserHandler() (*userHTTP.UserHandler, error) {
	var err error
	c.userHandlerInit.Do(func() {
		c.userHandler, err = c.initUserHandler()
		if err != nil {
			c.initErrors["userHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userHandler"]; exists {
		return nil, storedErr
	}
	return c.userHandler, nil
}

// TokenHandler returns the HTTP handler for token issuance.
func (c *Container) TokenHandler() (*authHTTP.TokenHandler, error) {
	var err error
	c.tokenHandlerInit.Do(func() {
		c.tokenHandler, err = c.initTokenHandler()
		if err != nil {
			c.initErrors["tokenHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenHandler"]; exists {
		return nil, storedErr
	}
	return c.tokenHandler, nil
}

// AuthMiddleware returns the bearer token authentication middleware.
func (c *Container) AuthMiddleware() (gin.HandlerFunc, error) {
	var err error
	c.authMiddlewareInit.Do(func() {
		c.authMiddleware, err = c.initAuthMiddleware()
		if err != nil {
			c.initErrors["authMiddleware"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authMiddleware"]; exists {
		return nil, storedErr
	}
	return c.authMiddleware, nil
}

// RateLimitMiddleware returns the per-user rate limiter, or nil when it is disabled.
func (c *Container) RateLimitMiddleware() gin.HandlerFunc {
	if !c.config.RateLimitEnabled {
		return nil
	}
	return authHTTP.RateLimitMiddleware(
		c.config.RateLimitRequestsPerSec,
		c.config.RateLimitBurst,
		c.Logger(),
	)
}

// TokenRateLimitMiddleware returns the per-IP rate limiter for the public endpoints,
// or nil when it is disabled.
func (c *Container) TokenRateLimitMiddleware() gin.HandlerFunc {
	if !c.config.RateLimitTokenEnabled {
		return nil
	}
	return authHTTP.TokenRateLimitMiddleware(
		c.config.RateLimitTokenRequestsPerSec,
		c.config.RateLimitTokenBurst,
		c.Logger(),
	)
}

// initPasswordService creates the password hashing service.
func (c *Container) initPasswordService() (authService.PasswordService, error) {
	passwordService, err := authService.NewPasswordService()
	if err != nil {
		return nil, fmt.Errorf("failed to create password service: %w", err)
	}
	return passwordService, nil
}

// initUserRepository creates the user repository for the configured driver.
// SQLite shares the MySQL implementation.
func (c *Container) initUserRepository() (userUseCase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	switch c.config.DBDriver {
	case config.DriverPostgres:
		return userRepository.NewPostgreSQLUserRepository(db), nil
	case config.DriverMySQL, config.DriverSQLite:
		return userRepository.NewMySQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initTokenRepository creates the token repository for the configured driver.
func (c *Container) initTokenRepository() (authUseCase.TokenRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for token repository: %w", err)
	}

	switch c.config.DBDriver {
	case config.DriverPostgres:
		return authRepository.NewPostgreSQLTokenRepository(db), nil
	case config.DriverMySQL, config.DriverSQLite:
		return authRepository.NewMySQLTokenRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initUserUseCase creates the user use case with all its dependencies.
func (c *Container) initUserUseCase() (userUseCase.UseCase, error) {
	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for user use case: %w", err)
	}

	passwordService, err := c.PasswordService()
	if err != nil {
		return nil, fmt.Errorf("failed to get password service for user use case: %w", err)
	}

	return userUseCase.NewUserUseCase(userRepo, passwordService), nil
}

// initTokenUseCase creates the token use case with all its dependencies.
func (c *Container) initTokenUseCase() (authUseCase.TokenUseCase, error) {
	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for token use case: %w", err)
	}

	tokenRepo, err := c.TokenRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get token repository for token use case: %w", err)
	}

	passwordService, err := c.PasswordService()
	if err != nil {
		return nil, fmt.Errorf("failed to get password service for token use case: %w", err)
	}

	baseUseCase := authUseCase.NewTokenUseCase(
		c.config,
		userRepo,
		tokenRepo,
		passwordService,
		c.TokenService(),
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for token use case: %w", err)
		}
		return authUseCase.NewTokenUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initUserHandler creates the user HTTP handler.
func (c *Container) initUserHandler() (*userHTTP.UserHandler, error) {
	useCase, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for user handler: %w", err)
	}
	return userHTTP.NewUserHandler(useCase, c.Logger()), nil
}

// initTokenHandler creates the token HTTP handler.
func (c *Container) initTokenHandler() (*authHTTP.TokenHandler, error) {
	useCase, err := c.TokenUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get token use case for token handler: %w", err)
	}
	return authHTTP.NewTokenHandler(useCase, c.Logger()), nil
}

// initAuthMiddleware creates the authentication middleware.
func (c *Container) initAuthMiddleware() (gin.HandlerFunc, error) {
	useCase, err := c.TokenUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get token use case for authentication middleware: %w", err)
	}
	return authHTTP.AuthenticationMiddleware(useCase, c.TokenService(), c.Logger()), nil
}
