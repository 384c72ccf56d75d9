package teardown

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v6"
)

// VMDescriptor is the typed snapshot of a VM's resource references,
// populated in one step from the provider model immediately after lookup.
// Downstream steps operate on these fields, never on the raw VM object.
type VMDescriptor struct {
	Name          string
	ResourceGroup string

	// OSDiskVHD is the VHD URI of the OS disk's backing blob.
	OSDiskVHD string
	// DataDiskVHDs are the VHD URIs of the data disks' backing blobs, in
	// the order the provider reports them.
	DataDiskVHDs []string
	// PrimaryNICID is the resource ID of the primary network interface.
	PrimaryNICID string
}

// NewVMDescriptor extracts the resource references from a VM model.
// It fails on any VM whose shape the teardown sequence cannot handle,
// before anything has been deleted.
func NewVMDescriptor(resourceGroup, name string, vm *armcompute.VirtualMachine) (*VMDescriptor, error) {
	if vm == nil || vm.Properties == nil {
		return nil, fmt.Errorf("VM %s has no properties", name)
	}

	storage := vm.Properties.StorageProfile
	if storage == nil || storage.OSDisk == nil || storage.OSDisk.Vhd == nil || storage.OSDisk.Vhd.URI == nil {
		return nil, fmt.Errorf("VM %s has no unmanaged OS disk", name)
	}

	desc := &VMDescriptor{
		Name:          name,
		ResourceGroup: resourceGroup,
		OSDiskVHD:     *storage.OSDisk.Vhd.URI,
	}

	for i, disk := range storage.DataDisks {
		if disk == nil || disk.Vhd == nil || disk.Vhd.URI == nil {
			return nil, fmt.Errorf("data disk %d of VM %s has no VHD URI", i, name)
		}
		desc.DataDiskVHDs = append(desc.DataDiskVHDs, *disk.Vhd.URI)
	}

	desc.PrimaryNICID = primaryNicID(vm.Properties.NetworkProfile)
	if desc.PrimaryNICID == "" {
		return nil, fmt.Errorf("VM %s has no network interface", name)
	}

	return desc, nil
}

// DiskVHDs returns all disk blob URIs, OS disk first.
func (d *VMDescriptor) DiskVHDs() []string {
	return append([]string{d.OSDiskVHD}, d.DataDiskVHDs...)
}

// primaryNicID picks the NIC reference marked primary. Single-NIC VMs carry
// no Primary flag, so the first reference wins as a fallback.
func primaryNicID(profile *armcompute.NetworkProfile) string {
	if profile == nil {
		return ""
	}

	var first string
	for _, nic := range profile.NetworkInterfaces {
		if nic == nil || nic.ID == nil {
			continue
		}
		if first == "" {
			first = *nic.ID
		}
		if nic.Properties != nil && nic.Properties.Primary != nil && *nic.Properties.Primary {
			return *nic.ID
		}
	}
	return first
}
