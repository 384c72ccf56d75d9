package commands

import (
	"github.com/spf13/cobra"

	"github.com/azureautomation/clean-azure-vm-deletion/cmd/azcleanvm/handlers"
)

// Teardown returns the teardown command.
//
// The teardown command deletes the VM and everything its descriptor
// references, in dependency order: the VM itself, the OS disk blob, the
// data disk blobs, and the primary network interface.
func Teardown() *cobra.Command {
	var opts handlers.TeardownOptions

	cmd := &cobra.Command{
		Use:   "teardown",
		Short: "Delete a virtual machine and its dependent resources",
		Long: `Teardown deletes a virtual machine and the resources it references.

The sequence is strict and fail-fast:
  1. The virtual machine itself (forced deletion)
  2. The OS disk's backing blob
  3. Each data disk's backing blob, in the order the VM reports them
  4. The primary network interface

Disks and the NIC may live in resource groups other than the VM's own;
their owning groups and storage account keys are resolved on the fly.
The first failure aborts the remaining steps. Nothing is retried and
nothing already deleted is restored.

Example:
  azcleanvm teardown -s 00000000-0000-0000-0000-000000000000 \
    -g my-vm-rg -n scxazsit102

WARNING: This operation is irreversible. The VM, its disks, and its
network interface will be permanently deleted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Teardown(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Subscription, "subscription", "s", "", "Azure subscription ID (required)")
	cmd.Flags().StringVarP(&opts.ResourceGroup, "resource-group", "g", "", "Resource group of the VM (required)")
	cmd.Flags().StringVarP(&opts.VMName, "vm-name", "n", "", "Name of the VM to delete (required)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to environment configuration file")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable verbose logging")
	_ = cmd.MarkFlagRequired("subscription")
	_ = cmd.MarkFlagRequired("resource-group")
	_ = cmd.MarkFlagRequired("vm-name")

	return cmd
}
