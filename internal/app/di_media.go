package app

import (
	"fmt"

	mediaHTTP "github.com/allisson/mediavault/internal/media/http"
	mediaService "github.com/allisson/mediavault/internal/media/service"
	mediaUseCase "github.com/allisson/mediavault/internal/media/usecase"
)

// MediaClient returns the client for the external media service API.
func (c *Container) MediaClient() *mediaService.CloudinaryClient {
	c.mediaClientInit.Do(func() {
		c.mediaClient = mediaService.NewCloudinaryClient(
			c.config.MediaAPIBaseURL,
			c.config.MediaRequestTimeout,
		)
	})
	return c.mediaClient
}

// Resolver returns the asset category resolver.
func (c *Container) Resolver() (*mediaService.Resolver, error) {
	var err error
	c.resolverInit.Do(func() {
		c.resolver, err = c.initResolver()
		if err != nil {
			c.initErrors["resolver"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["resolver"]; exists {
		return nil, storedErr
	}
	return c.resolver, nil
}

// AssetUseCase returns the asset use case.
func (c *Container) AssetUseCase() (mediaUseCase.AssetUseCase, error) {
	var err error
	c.assetUseCaseInit.Do(func() {
		c.assetUseCase, err = c.initAssetUseCase()
		if err != nil {
			c.initErrors["assetUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["assetUseCase"]; exists {
		return nil, storedErr
	}
	return c.assetUseCase, nil
}

// AssetHandler returns the HTTP handler for asset endpoints.
func (c *Container) AssetHandler() (*mediaHTTP.AssetHandler, error) {
	var err error
	c.assetHandlerInit.Do(func() {
		c.assetHandler, err = c.initAssetHandler()
		if err != nil {
			c.initErrors["assetHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["assetHandler"]; exists {
		return nil, storedErr
	}
	return c.assetHandler, nil
}

// initResolver creates the resolver probing through the media client.
func (c *Container) initResolver() (*mediaService.Resolver, error) {
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for resolver: %w", err)
	}
	return mediaService.NewResolver(c.MediaClient(), c.config.MediaProbeTimeout, businessMetrics), nil
}

// initAssetUseCase creates the asset use case with all its dependencies.
func (c *Container) initAssetUseCase() (mediaUseCase.AssetUseCase, error) {
	sessions, err := c.SessionProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get session provider for asset use case: %w", err)
	}

	resolver, err := c.Resolver()
	if err != nil {
		return nil, fmt.Errorf("failed to get resolver for asset use case: %w", err)
	}

	baseUseCase := mediaUseCase.NewAssetUseCase(sessions, c.MediaClient(), resolver, c.Logger())

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for asset use case: %w", err)
		}
		return mediaUseCase.NewAssetUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initAssetHandler creates the asset HTTP handler.
func (c *Container) initAssetHandler() (*mediaHTTP.AssetHandler, error) {
	useCase, err := c.AssetUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get asset use case for asset handler: %w", err)
	}
	return mediaHTTP.NewAssetHandler(useCase, c.config.MediaUploadMaxBytes, c.Logger()), nil
}
