// Package azure provides a wrapper around the Azure Resource Manager and
// Blob Storage APIs.
package azure

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v6"
)

// ComputeManager defines the interface for virtual machine operations.
type ComputeManager interface {
	// GetVM returns the full virtual machine model by name.
	GetVM(ctx context.Context, resourceGroup, name string) (*armcompute.VirtualMachine, error)

	// DeleteVM force-deletes the virtual machine and waits for the
	// operation to reach a terminal state.
	DeleteVM(ctx context.Context, resourceGroup, name string) error
}

// NetworkManager defines the interface for network interface operations.
type NetworkManager interface {
	// DeleteInterface deletes a network interface and waits for the
	// operation to reach a terminal state.
	DeleteInterface(ctx context.Context, resourceGroup, name string) error
}

// StorageManager defines the interface for storage account and blob operations.
type StorageManager interface {
	// ListResourceGroups returns the names of every resource group in the
	// subscription.
	ListResourceGroups(ctx context.Context) ([]string, error)

	// StorageAccountExists reports whether the named storage account lives
	// in the given resource group.
	StorageAccountExists(ctx context.Context, resourceGroup, account string) (bool, error)

	// StorageAccountKey returns an access key for the storage account.
	StorageAccountKey(ctx context.Context, resourceGroup, account string) (string, error)

	// DeleteBlob opens a shared-key session on the account and deletes the
	// named blob.
	DeleteBlob(ctx context.Context, account, key, container, blob string) error
}

// ResourceManager combines all per-concern interfaces. The teardown
// orchestrator depends on this, never on concrete SDK clients.
type ResourceManager interface {
	ComputeManager
	NetworkManager
	StorageManager
}
