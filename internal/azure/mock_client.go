package azure

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v6"
)

// MockClient is a mock implementation of ResourceManager.
type MockClient struct {
	GetVMFunc    func(ctx context.Context, resourceGroup, name string) (*armcompute.VirtualMachine, error)
	DeleteVMFunc func(ctx context.Context, resourceGroup, name string) error

	DeleteInterfaceFunc func(ctx context.Context, resourceGroup, name string) error

	ListResourceGroupsFunc   func(ctx context.Context) ([]string, error)
	StorageAccountExistsFunc func(ctx context.Context, resourceGroup, account string) (bool, error)
	StorageAccountKeyFunc    func(ctx context.Context, resourceGroup, account string) (string, error)
	DeleteBlobFunc           func(ctx context.Context, account, key, container, blob string) error
}

// GetVM mocks a VM lookup.
func (m *MockClient) GetVM(ctx context.Context, resourceGroup, name string) (*armcompute.VirtualMachine, error) {
	if m.GetVMFunc != nil {
		return m.GetVMFunc(ctx, resourceGroup, name)
	}
	return &armcompute.VirtualMachine{}, nil
}

// DeleteVM mocks VM deletion.
func (m *MockClient) DeleteVM(ctx context.Context, resourceGroup, name string) error {
	if m.DeleteVMFunc != nil {
		return m.DeleteVMFunc(ctx, resourceGroup, name)
	}
	return nil
}

// DeleteInterface mocks NIC deletion.
func (m *MockClient) DeleteInterface(ctx context.Context, resourceGroup, name string) error {
	if m.DeleteInterfaceFunc != nil {
		return m.DeleteInterfaceFunc(ctx, resourceGroup, name)
	}
	return nil
}

// ListResourceGroups mocks the subscription-wide group listing.
func (m *MockClient) ListResourceGroups(ctx context.Context) ([]string, error) {
	if m.ListResourceGroupsFunc != nil {
		return m.ListResourceGroupsFunc(ctx)
	}
	return nil, nil
}

// StorageAccountExists mocks the per-group account probe.
func (m *MockClient) StorageAccountExists(ctx context.Context, resourceGroup, account string) (bool, error) {
	if m.StorageAccountExistsFunc != nil {
		return m.StorageAccountExistsFunc(ctx, resourceGroup, account)
	}
	return false, nil
}

// StorageAccountKey mocks the key fetch.
func (m *MockClient) StorageAccountKey(ctx context.Context, resourceGroup, account string) (string, error) {
	if m.StorageAccountKeyFunc != nil {
		return m.StorageAccountKeyFunc(ctx, resourceGroup, account)
	}
	return "mock-key", nil
}

// DeleteBlob mocks blob deletion.
func (m *MockClient) DeleteBlob(ctx context.Context, account, key, container, blob string) error {
	if m.DeleteBlobFunc != nil {
		return m.DeleteBlobFunc(ctx, account, key, container, blob)
	}
	return nil
}
