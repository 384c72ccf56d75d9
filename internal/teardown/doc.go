// Package teardown deletes a virtual machine and its dependent resources.
//
// It resolves the VM into a typed descriptor, then deletes in strict
// dependency order: the VM first, then the OS disk blob, then each data
// disk blob in platter order, then the primary network interface. The
// owning resource group and storage key for each blob are resolved on the
// fly, because disks may live in resource groups other than the VM's own.
// The sequence is fail-fast: the first error aborts the remainder.
package teardown
