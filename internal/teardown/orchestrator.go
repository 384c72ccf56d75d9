package teardown

import (
	"errors"
	"fmt"

	"github.com/azureautomation/clean-azure-vm-deletion/internal/azure"
)

// Orchestrator deletes a VM and its dependent resources in strict sequence.
type Orchestrator struct{}

// NewOrchestrator creates a new teardown orchestrator.
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{}
}

// Run executes the teardown sequence. The first error aborts the remainder
// and is returned; nothing already deleted is rolled back.
func (o *Orchestrator) Run(ctx *Context) error {
	cfg := ctx.Config
	ctx.Observer.Event(Event{
		Type:     EventRunStarted,
		Resource: cfg.VMName,
		Message:  fmt.Sprintf("tearing down VM %s in %s", cfg.VMName, cfg.ResourceGroup),
	})

	vm, err := ctx.Cloud.GetVM(ctx, cfg.ResourceGroup, cfg.VMName)
	if err != nil {
		return fmt.Errorf("failed to resolve VM %s: %w", cfg.VMName, err)
	}
	desc, err := NewVMDescriptor(cfg.ResourceGroup, cfg.VMName, vm)
	if err != nil {
		return err
	}

	// The VM goes first: its disks and NIC cannot be freed while attached.
	LogResourceDeleting(ctx.Observer, "virtual machine", desc.Name)
	if err := ctx.Cloud.DeleteVM(ctx, desc.ResourceGroup, desc.Name); err != nil {
		return fmt.Errorf("failed to delete VM %s: %w", desc.Name, err)
	}
	LogResourceDeleted(ctx.Observer, "virtual machine", desc.Name)

	role := "OS disk"
	for _, uri := range desc.DiskVHDs() {
		if err := o.deleteDiskBlob(ctx, role, uri); err != nil {
			return err
		}
		role = "data disk"
	}

	nicGroup, nicName, err := azure.ParseNicID(desc.PrimaryNICID)
	if err != nil {
		return err
	}
	LogResourceDeleting(ctx.Observer, "network interface", nicName)
	if err := ctx.Cloud.DeleteInterface(ctx, nicGroup, nicName); err != nil {
		return fmt.Errorf("failed to delete NIC %s: %w", nicName, err)
	}
	LogResourceDeleted(ctx.Observer, "network interface", nicName)

	ctx.Observer.Event(Event{
		Type:     EventRunCompleted,
		Resource: desc.Name,
		Message:  fmt.Sprintf("VM %s torn down", desc.Name),
	})
	return nil
}

// deleteDiskBlob removes one disk's backing blob, resolving the owning
// resource group and a storage key on the fly.
func (o *Orchestrator) deleteDiskBlob(ctx *Context, role, uri string) error {
	ref, err := azure.ParseVHDURI(uri)
	if err != nil {
		return fmt.Errorf("failed to derive blob reference for %s: %w", role, err)
	}

	group, err := o.resolveBlobOwner(ctx, ref.Account)
	if err != nil {
		if !errors.Is(err, ErrOwningGroupNotFound) {
			return err
		}
		// Inherited from the original sequence: the key fetch below is
		// still attempted against the empty group and surfaces the failure.
		LogWarning(ctx.Observer, ref.Account, err.Error())
	}

	key, err := ctx.Cloud.StorageAccountKey(ctx, group, ref.Account)
	if err != nil {
		return fmt.Errorf("failed to obtain key for storage account %s: %w", ref.Account, err)
	}

	blobName := ref.Container + "/" + ref.Blob
	LogResourceDeleting(ctx.Observer, role+" blob", blobName)
	if err := ctx.Cloud.DeleteBlob(ctx, ref.Account, key, ref.Container, ref.Blob); err != nil {
		return fmt.Errorf("failed to delete %s blob %s: %w", role, blobName, err)
	}
	LogResourceDeleted(ctx.Observer, role+" blob", blobName)
	return nil
}

// resolveBlobOwner scans every resource group in the subscription for the
// storage account. Lookups are intentionally not cached across disks.
func (o *Orchestrator) resolveBlobOwner(ctx *Context, account string) (string, error) {
	groups, err := ctx.Cloud.ListResourceGroups(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list resource groups: %w", err)
	}
	for _, group := range groups {
		ok, err := ctx.Cloud.StorageAccountExists(ctx, group, account)
		if err != nil {
			return "", err
		}
		if ok {
			return group, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrOwningGroupNotFound, account)
}
