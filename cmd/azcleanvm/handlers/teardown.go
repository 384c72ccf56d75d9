// Package handlers implements command execution for the azcleanvm CLI.
package handlers

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/azureautomation/clean-azure-vm-deletion/internal/azure"
	"github.com/azureautomation/clean-azure-vm-deletion/internal/config"
	"github.com/azureautomation/clean-azure-vm-deletion/internal/teardown"
)

// Orchestrator interface for testing - matches teardown.Orchestrator.
type Orchestrator interface {
	Run(ctx *teardown.Context) error
}

// Factory function variables - can be replaced in tests.
var (
	// newCloudClient builds the Azure client set for the subscription.
	// Credential acquisition is assumed already established in the
	// environment (CLI login, managed identity, or env vars).
	newCloudClient = func(cfg *config.Config) (azure.ResourceManager, error) {
		cred, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to obtain credential: %w", err)
		}
		return azure.NewRealClient(cfg.SubscriptionID, cred,
			azure.WithEndpointSuffix(cfg.Cloud.EndpointSuffix))
	}

	// newOrchestrator creates a new teardown orchestrator.
	newOrchestrator = func() Orchestrator {
		return teardown.NewOrchestrator()
	}

	// newTeardownContext creates a new teardown context.
	newTeardownContext = teardown.NewContext
)

// TeardownOptions carries the flag values of the teardown command.
type TeardownOptions struct {
	Subscription  string
	ResourceGroup string
	VMName        string
	ConfigPath    string
	Verbose       bool
}

// Teardown handles the teardown command.
//
// It assembles the configuration, builds the Azure client set, and runs the
// orchestrator under the overall teardown timeout. Any failure in the
// sequence is wrapped exactly once here.
func Teardown(ctx context.Context, opts TeardownOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if opts.Verbose {
		// Restored on every exit path, including failures.
		prev := logrus.GetLevel()
		logrus.SetLevel(logrus.DebugLevel)
		defer logrus.SetLevel(prev)
	}

	runID := uuid.NewString()
	log := logrus.WithField("run", runID)
	log.Infof("Tearing down VM %s in resource group %s", cfg.VMName, cfg.ResourceGroup)

	cloud, err := newCloudClient(cfg)
	if err != nil {
		return err
	}

	timeouts := config.LoadTimeouts()
	runCtx, cancel := context.WithTimeout(ctx, timeouts.Teardown)
	defer cancel()

	tCtx := newTeardownContext(runCtx, cfg, cloud)
	tCtx.Observer = tCtx.Observer.WithFields(map[string]string{"run": runID})

	if err := newOrchestrator().Run(tCtx); err != nil {
		if azure.IsPermissionDenied(err) {
			log.Warn("the credential lacks delete rights on one of the resources")
		}
		return fmt.Errorf("teardown failed: %w", err)
	}

	log.Infof("VM %s torn down successfully", cfg.VMName)
	return nil
}

// loadConfig merges the optional config file with the command flags.
// The file supplies environment settings; the flags name the target and
// always win for the target triple.
func loadConfig(opts TeardownOptions) (*config.Config, error) {
	cfg := &config.Config{}
	if opts.ConfigPath != "" {
		loaded, err := config.LoadFile(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if opts.Subscription != "" {
		cfg.SubscriptionID = opts.Subscription
	}
	if opts.ResourceGroup != "" {
		cfg.ResourceGroup = opts.ResourceGroup
	}
	if opts.VMName != "" {
		cfg.VMName = opts.VMName
	}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid teardown target: %w", err)
	}
	return cfg, nil
}
