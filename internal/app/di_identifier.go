package app

import (
	"fmt"
	"time"

	"github.com/allisson/idsmith/internal/bankaccount"
	"github.com/allisson/idsmith/internal/companyid"
	"github.com/allisson/idsmith/internal/country"
	"github.com/allisson/idsmith/internal/driverlicense"
	identifierHTTP "github.com/allisson/idsmith/internal/identifier/http"
	"github.com/allisson/idsmith/internal/identifier/registry"
	identifierUseCase "github.com/allisson/idsmith/internal/identifier/usecase"
	"github.com/allisson/idsmith/internal/passport"
	"github.com/allisson/idsmith/internal/personalid"
	"github.com/allisson/idsmith/internal/taxid"
	"github.com/allisson/idsmith/internal/vat"
)

// Countries returns the embedded country directory.
func (c *Container) Countries() (*country.Directory, error) {
	var err error
	c.countriesInit.Do(func() {
		c.countries, err = country.Load()
		if err != nil {
			c.initErrors["countries"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["countries"]; exists {
		return nil, storedErr
	}
	return c.countries, nil
}

// BankAccountRegistry returns the bank account registry.
func (c *Container) BankAccountRegistry() (*registry.Registry, error) {
	var err error
	c.bankAccountRegistryInit.Do(func() {
		c.bankAccountRegistry, err = c.initBankAccountRegistry()
		if err != nil {
			c.initErrors["bankAccountRegistry"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["bankAccountRegistry"]; exists {
		return nil, storedErr
	}
	return c.bankAccountRegistry, nil
}

// PersonalIDRegistry returns the personal id registry.
func (c *Container) PersonalIDRegistry() (*registry.Registry, error) {
	var err error
	c.personalIDRegistryInit.Do(func() {
		c.personalIDRegistry, err = c.initPersonalIDRegistry()
		if err != nil {
			c.initErrors["personalIDRegistry"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["personalIDRegistry"]; exists {
		return nil, storedErr
	}
	return c.personalIDRegistry, nil
}

// TaxIDRegistry returns the tax id registry.
func (c *Container) TaxIDRegistry() (*registry.Registry, error) {
	var err error
	c.taxIDRegistryInit.Do(func() {
		c.taxIDRegistry, err = c.initTaxIDRegistry()
		if err != nil {
			c.initErrors["taxIDRegistry"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["taxIDRegistry"]; exists {
		return nil, storedErr
	}
	return c.taxIDRegistry, nil
}

// CompanyIDRegistry returns the company id registry.
func (c *Container) CompanyIDRegistry() (*registry.Registry, error) {
	var err error
	c.companyIDRegistryInit.Do(func() {
		c.companyIDRegistry, err = c.initCompanyIDRegistry()
		if err != nil {
			c.initErrors["companyIDRegistry"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["companyIDRegistry"]; exists {
		return nil, storedErr
	}
	return c.companyIDRegistry, nil
}

// VATRegistry returns the vat registry.
func (c *Container) VATRegistry() (*registry.Registry, error) {
	var err error
	c.vatRegistryInit.Do(func() {
		c.vatRegistry, err = c.initVATRegistry()
		if err != nil {
			c.initErrors["vatRegistry"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["vatRegistry"]; exists {
		return nil, storedErr
	}
	return c.vatRegistry, nil
}

// PassportRegistry returns the passport registry.
func (c *Container) PassportRegistry() (*registry.Registry, error) {
	var err error
	c.passportRegistryInit.Do(func() {
		c.passportRegistry, err = c.initPassportRegistry()
		if err != nil {
			c.initErrors["passportRegistry"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["passportRegistry"]; exists {
		return nil, storedErr
	}
	return c.passportRegistry, nil
}

// DriverLicenseRegistry returns the driver license registry.
func (c *Container) DriverLicenseRegistry() (*registry.Registry, error) {
	var err error
	c.driverLicenseRegistryInit.Do(func() {
		c.driverLicenseRegistry, err = c.initDriverLicenseRegistry()
		if err != nil {
			c.initErrors["driverLicenseRegistry"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["driverLicenseRegistry"]; exists {
		return nil, storedErr
	}
	return c.driverLicenseRegistry, nil
}

// IdentifierUseCase returns the use case serving the registry-backed kinds.
func (c *Container) IdentifierUseCase() (identifierUseCase.IdentifierUseCase, error) {
	var err error
	c.identifierUseCaseInit.Do(func() {
		c.identifierUseCase, err = c.initIdentifierUseCase()
		if err != nil {
			c.initErrors["identifierUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["identifierUseCase"]; exists {
		return nil, storedErr
	}
	return c.identifierUseCase, nil
}

// IBANUseCase returns the IBAN use case.
func (c *Container) IBANUseCase() (identifierUseCase.IBANUseCase, error) {
	var err error
	c.ibanUseCaseInit.Do(func() {
		c.ibanUseCase, err = c.initIBANUseCase()
		if err != nil {
			c.initErrors["ibanUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["ibanUseCase"]; exists {
		return nil, storedErr
	}
	return c.ibanUseCase, nil
}

// CardUseCase returns the payment card use case.
func (c *Container) CardUseCase() (identifierUseCase.CardUseCase, error) {
	var err error
	c.cardUseCaseInit.Do(func() {
		c.cardUseCase, err = c.initCardUseCase()
		if err != nil {
			c.initErrors["cardUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cardUseCase"]; exists {
		return nil, storedErr
	}
	return c.cardUseCase, nil
}

// LEIUseCase returns the LEI use case.
func (c *Container) LEIUseCase() (identifierUseCase.LEIUseCase, error) {
	var err error
	c.leiUseCaseInit.Do(func() {
		c.leiUseCase, err = c.initLEIUseCase()
		if err != nil {
			c.initErrors["leiUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["leiUseCase"]; exists {
		return nil, storedErr
	}
	return c.leiUseCase, nil
}

// IdentifierHandler returns the HTTP handler for /v1/{kind} routes.
func (c *Container) IdentifierHandler() (*identifierHTTP.IdentifierHandler, error) {
	var err error
	c.identifierHandlerInit.Do(func() {
		c.identifierHandler, err = c.initIdentifierHandler()
		if err != nil {
			c.initErrors["identifierHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["identifierHandler"]; exists {
		return nil, storedErr
	}
	return c.identifierHandler, nil
}

// InstitutionHandler returns the HTTP handler for the IBAN, card and LEI routes.
func (c *Container) InstitutionHandler() (*identifierHTTP.InstitutionHandler, error) {
	var err error
	c.institutionHandlerInit.Do(func() {
		c.institutionHandler, err = c.initInstitutionHandler()
		if err != nil {
			c.initErrors["institutionHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["institutionHandler"]; exists {
		return nil, storedErr
	}
	return c.institutionHandler, nil
}

func (c *Container) useCaseConfig() identifierUseCase.Config {
	return identifierUseCase.Config{
		MaxBatchSize: c.config.MaxBatchSize,
		Workers:      c.config.GenerationWorkers,
		Clock:        time.Now,
	}
}

func (c *Container) initBankAccountRegistry() (*registry.Registry, error) {
	countries, err := c.Countries()
	if err != nil {
		return nil, fmt.Errorf("failed to get countries for bank account registry: %w", err)
	}
	reg, err := bankaccount.New(countries, c.config.SolverMaxAttempts)
	if err != nil {
		return nil, fmt.Errorf("failed to build bank account registry: %w", err)
	}
	return reg, nil
}

func (c *Container) initPersonalIDRegistry() (*registry.Registry, error) {
	countries, err := c.Countries()
	if err != nil {
		return nil, fmt.Errorf("failed to get countries for personal id registry: %w", err)
	}
	reg, err := personalid.New(countries)
	if err != nil {
		return nil, fmt.Errorf("failed to build personal id registry: %w", err)
	}
	return reg, nil
}

func (c *Container) initTaxIDRegistry() (*registry.Registry, error) {
	countries, err := c.Countries()
	if err != nil {
		return nil, fmt.Errorf("failed to get countries for tax id registry: %w", err)
	}
	reg, err := taxid.New(countries)
	if err != nil {
		return nil, fmt.Errorf("failed to build tax id registry: %w", err)
	}
	return reg, nil
}

func (c *Container) initCompanyIDRegistry() (*registry.Registry, error) {
	countries, err := c.Countries()
	if err != nil {
		return nil, fmt.Errorf("failed to get countries for company id registry: %w", err)
	}
	reg, err := companyid.New(countries)
	if err != nil {
		return nil, fmt.Errorf("failed to build company id registry: %w", err)
	}
	return reg, nil
}

func (c *Container) initVATRegistry() (*registry.Registry, error) {
	countries, err := c.Countries()
	if err != nil {
		return nil, fmt.Errorf("failed to get countries for vat registry: %w", err)
	}
	reg, err := vat.New(countries)
	if err != nil {
		return nil, fmt.Errorf("failed to build vat registry: %w", err)
	}
	return reg, nil
}

func (c *Container) initPassportRegistry() (*registry.Registry, error) {
	countries, err := c.Countries()
	if err != nil {
		return nil, fmt.Errorf("failed to get countries for passport registry: %w", err)
	}
	reg, err := passport.New(countries)
	if err != nil {
		return nil, fmt.Errorf("failed to build passport registry: %w", err)
	}
	return reg, nil
}

func (c *Container) initDriverLicenseRegistry() (*registry.Registry, error) {
	countries, err := c.Countries()
	if err != nil {
		return nil, fmt.Errorf("failed to get countries for driver license registry: %w", err)
	}
	reg, err := driverlicense.New(countries)
	if err != nil {
		return nil, fmt.Errorf("failed to build driver license registry: %w", err)
	}
	return reg, nil
}

// initIdentifierUseCase builds the use case over every registry, wrapped with metrics
// when enabled.
func (c *Container) initIdentifierUseCase() (identifierUseCase.IdentifierUseCase, error) {
	builders := []func() (*registry.Registry, error){
		c.BankAccountRegistry,
		c.PersonalIDRegistry,
		c.TaxIDRegistry,
		c.CompanyIDRegistry,
		c.VATRegistry,
		c.PassportRegistry,
		c.DriverLicenseRegistry,
	}
	registries := make([]identifierUseCase.Registry, 0, len(builders))
	for _, build := range builders {
		reg, err := build()
		if err != nil {
			return nil, err
		}
		registries = append(registries, reg)
	}

	baseUseCase := identifierUseCase.NewIdentifierUseCase(c.useCaseConfig(), registries...)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for identifier use case: %w", err)
		}
		return identifierUseCase.NewIdentifierUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initIBANUseCase() (identifierUseCase.IBANUseCase, error) {
	countries, err := c.Countries()
	if err != nil {
		return nil, fmt.Errorf("failed to get countries for iban use case: %w", err)
	}

	baseUseCase := identifierUseCase.NewIBANUseCase(c.useCaseConfig(), countries)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for iban use case: %w", err)
		}
		return identifierUseCase.NewIBANUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initCardUseCase() (identifierUseCase.CardUseCase, error) {
	baseUseCase := identifierUseCase.NewCardUseCase(c.useCaseConfig())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for card use case: %w", err)
		}
		return identifierUseCase.NewCardUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initLEIUseCase() (identifierUseCase.LEIUseCase, error) {
	baseUseCase := identifierUseCase.NewLEIUseCase(c.useCaseConfig())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for lei use case: %w", err)
		}
		return identifierUseCase.NewLEIUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initIdentifierHandler() (*identifierHTTP.IdentifierHandler, error) {
	useCase, err := c.IdentifierUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get identifier use case for identifier handler: %w", err)
	}
	return identifierHTTP.NewIdentifierHandler(useCase, c.Logger()), nil
}

func (c *Container) initInstitutionHandler() (*identifierHTTP.InstitutionHandler, error) {
	ibanUseCase, err := c.IBANUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get iban use case for institution handler: %w", err)
	}
	cardUseCase, err := c.CardUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get card use case for institution handler: %w", err)
	}
	leiUseCase, err := c.LEIUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get lei use case for institution handler: %w", err)
	}
	return identifierHTTP.NewInstitutionHandler(ibanUseCase, cardUseCase, leiUseCase, c.Logger()), nil
}
