// Package config holds the runtime configuration for the teardown CLI.
package config

import "fmt"

// Config describes one teardown target and the cloud environment it lives in.
type Config struct {
	// SubscriptionID is the Azure subscription containing the VM.
	SubscriptionID string `yaml:"subscriptionId"`
	// ResourceGroup is the resource group the VM itself lives in. Resources
	// referenced by the VM may live in other groups.
	ResourceGroup string `yaml:"resourceGroup"`
	// VMName is the name of the virtual machine to tear down.
	VMName string `yaml:"vmName"`

	Cloud Cloud `yaml:"cloud"`
}

// Cloud holds environment settings, for sovereign cloud support.
type Cloud struct {
	// EndpointSuffix is the blob endpoint suffix, e.g. core.windows.net.
	EndpointSuffix string `yaml:"endpointSuffix"`
}

// Validate checks that the configuration identifies exactly one VM.
func (c *Config) Validate() error {
	if c.SubscriptionID == "" {
		return fmt.Errorf("subscription ID is required")
	}
	if c.ResourceGroup == "" {
		return fmt.Errorf("resource group is required")
	}
	if c.VMName == "" {
		return fmt.Errorf("VM name is required")
	}
	return nil
}
