package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v6"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/storage/armstorage"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"

	"github.com/azureautomation/clean-azure-vm-deletion/internal/config"
)

// DefaultEndpointSuffix is the blob endpoint suffix of the public cloud.
const DefaultEndpointSuffix = "core.windows.net"

// RealClient implements ResourceManager using the Azure SDK.
type RealClient struct {
	vms            *armcompute.VirtualMachinesClient
	nics           *armnetwork.InterfacesClient
	groups         *armresources.ResourceGroupsClient
	accounts       *armstorage.AccountsClient
	endpointSuffix string
	timeouts       *config.Timeouts
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithEndpointSuffix sets the blob endpoint suffix, for sovereign clouds.
func WithEndpointSuffix(suffix string) ClientOption {
	return func(c *RealClient) {
		if suffix != "" {
			c.endpointSuffix = suffix
		}
	}
}

// NewRealClient creates a RealClient for the given subscription.
func NewRealClient(subscriptionID string, cred azcore.TokenCredential, opts ...ClientOption) (*RealClient, error) {
	vms, err := armcompute.NewVirtualMachinesClient(subscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create compute client: %w", err)
	}
	nics, err := armnetwork.NewInterfacesClient(subscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create network client: %w", err)
	}
	groups, err := armresources.NewResourceGroupsClient(subscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create resources client: %w", err)
	}
	accounts, err := armstorage.NewAccountsClient(subscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	c := &RealClient{
		vms:            vms,
		nics:           nics,
		groups:         groups,
		accounts:       accounts,
		endpointSuffix: DefaultEndpointSuffix,
		timeouts:       config.LoadTimeouts(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// --- ComputeManager ---

// GetVM returns the full virtual machine model by name.
func (c *RealClient) GetVM(ctx context.Context, resourceGroup, name string) (*armcompute.VirtualMachine, error) {
	resp, err := c.vms.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get VM %s: %w", name, err)
	}
	return &resp.VirtualMachine, nil
}

// DeleteVM force-deletes the virtual machine and waits for completion.
func (c *RealClient) DeleteVM(ctx context.Context, resourceGroup, name string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.Poll)
	defer cancel()

	force := true
	poller, err := c.vms.BeginDelete(ctx, resourceGroup, name, &armcompute.VirtualMachinesClientBeginDeleteOptions{
		ForceDeletion: &force,
	})
	if err != nil {
		return fmt.Errorf("failed to start VM deletion: %w", err)
	}
	if _, err := poller.PollUntilDone(ctx, nil); err != nil {
		return fmt.Errorf("failed to delete VM %s: %w", name, err)
	}
	return nil
}

// --- NetworkManager ---

// DeleteInterface deletes a network interface and waits for completion.
func (c *RealClient) DeleteInterface(ctx context.Context, resourceGroup, name string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.Poll)
	defer cancel()

	poller, err := c.nics.BeginDelete(ctx, resourceGroup, name, nil)
	if err != nil {
		return fmt.Errorf("failed to start NIC deletion: %w", err)
	}
	if _, err := poller.PollUntilDone(ctx, nil); err != nil {
		return fmt.Errorf("failed to delete NIC %s: %w", name, err)
	}
	return nil
}

// --- StorageManager ---

// ListResourceGroups returns the names of every resource group in the subscription.
func (c *RealClient) ListResourceGroups(ctx context.Context) ([]string, error) {
	var names []string
	pager := c.groups.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list resource groups: %w", err)
		}
		for _, group := range page.Value {
			if group.Name != nil {
				names = append(names, *group.Name)
			}
		}
	}
	return names, nil
}

// StorageAccountExists probes the storage account in the given resource group.
// A not-found response means the account lives elsewhere, not an error.
func (c *RealClient) StorageAccountExists(ctx context.Context, resourceGroup, account string) (bool, error) {
	_, err := c.accounts.GetProperties(ctx, resourceGroup, account, nil)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to probe storage account %s in %s: %w", account, resourceGroup, err)
	}
	return true, nil
}

// StorageAccountKey returns the first access key of the storage account.
func (c *RealClient) StorageAccountKey(ctx context.Context, resourceGroup, account string) (string, error) {
	resp, err := c.accounts.ListKeys(ctx, resourceGroup, account, nil)
	if err != nil {
		return "", fmt.Errorf("failed to list keys for storage account %s: %w", account, err)
	}
	for _, key := range resp.Keys {
		if key.Value != nil && *key.Value != "" {
			return *key.Value, nil
		}
	}
	return "", fmt.Errorf("no accessible key for storage account %s", account)
}

// DeleteBlob opens a shared-key session on the account and deletes the blob.
func (c *RealClient) DeleteBlob(ctx context.Context, account, key, container, blob string) error {
	cred, err := azblob.NewSharedKeyCredential(account, key)
	if err != nil {
		return fmt.Errorf("failed to build storage credential for %s: %w", account, err)
	}
	serviceURL := fmt.Sprintf("https://%s.blob.%s/", account, c.endpointSuffix)
	client, err := azblob.NewClientWithSharedKeyCredential(serviceURL, cred, nil)
	if err != nil {
		return fmt.Errorf("failed to open blob session on %s: %w", account, err)
	}
	if _, err := client.DeleteBlob(ctx, container, blob, nil); err != nil {
		return fmt.Errorf("failed to delete blob %s/%s on %s: %w", container, blob, account, err)
	}
	return nil
}
