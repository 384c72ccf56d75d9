package teardown

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testNicID = "/subscriptions/sub/resourceGroups/net-rg/providers/Microsoft.Network/networkInterfaces/vm1-nic"

func testVM(osURI string, dataURIs []string, nicIDs ...string) *armcompute.VirtualMachine {
	var dataDisks []*armcompute.DataDisk
	for i, uri := range dataURIs {
		dataDisks = append(dataDisks, &armcompute.DataDisk{
			Lun: to.Ptr(int32(i)),
			Vhd: &armcompute.VirtualHardDisk{URI: to.Ptr(uri)},
		})
	}

	var nics []*armcompute.NetworkInterfaceReference
	for _, id := range nicIDs {
		nics = append(nics, &armcompute.NetworkInterfaceReference{ID: to.Ptr(id)})
	}

	return &armcompute.VirtualMachine{
		Properties: &armcompute.VirtualMachineProperties{
			StorageProfile: &armcompute.StorageProfile{
				OSDisk: &armcompute.OSDisk{
					Vhd: &armcompute.VirtualHardDisk{URI: to.Ptr(osURI)},
				},
				DataDisks: dataDisks,
			},
			NetworkProfile: &armcompute.NetworkProfile{
				NetworkInterfaces: nics,
			},
		},
	}
}

func TestNewVMDescriptor(t *testing.T) {
	vm := testVM(
		"https://stor001.blob.core.windows.net/vhds/os.vhd",
		[]string{
			"https://stor001.blob.core.windows.net/vhds/data0.vhd",
			"https://stor002.blob.core.windows.net/vhds/data1.vhd",
		},
		testNicID,
	)

	desc, err := NewVMDescriptor("vm-rg", "vm1", vm)
	require.NoError(t, err)
	assert.Equal(t, "vm1", desc.Name)
	assert.Equal(t, "vm-rg", desc.ResourceGroup)
	assert.Equal(t, "https://stor001.blob.core.windows.net/vhds/os.vhd", desc.OSDiskVHD)
	assert.Equal(t, []string{
		"https://stor001.blob.core.windows.net/vhds/data0.vhd",
		"https://stor002.blob.core.windows.net/vhds/data1.vhd",
	}, desc.DataDiskVHDs)
	assert.Equal(t, testNicID, desc.PrimaryNICID)
}

func TestNewVMDescriptor_DiskVHDsOrder(t *testing.T) {
	vm := testVM("https://a.blob.core.windows.net/vhds/os.vhd",
		[]string{"https://a.blob.core.windows.net/vhds/d0.vhd"}, testNicID)

	desc, err := NewVMDescriptor("vm-rg", "vm1", vm)
	require.NoError(t, err)

	// OS disk is always first among storage deletions.
	assert.Equal(t, []string{
		"https://a.blob.core.windows.net/vhds/os.vhd",
		"https://a.blob.core.windows.net/vhds/d0.vhd",
	}, desc.DiskVHDs())
}

func TestNewVMDescriptor_PrimaryNicFlagged(t *testing.T) {
	secondary := "/subscriptions/sub/resourceGroups/net-rg/providers/Microsoft.Network/networkInterfaces/nic-secondary"
	vm := testVM("https://a.blob.core.windows.net/vhds/os.vhd", nil, secondary, testNicID)
	vm.Properties.NetworkProfile.NetworkInterfaces[1].Properties = &armcompute.NetworkInterfaceReferenceProperties{
		Primary: to.Ptr(true),
	}

	desc, err := NewVMDescriptor("vm-rg", "vm1", vm)
	require.NoError(t, err)
	assert.Equal(t, testNicID, desc.PrimaryNICID)
}

func TestNewVMDescriptor_SingleNicWithoutFlag(t *testing.T) {
	vm := testVM("https://a.blob.core.windows.net/vhds/os.vhd", nil, testNicID)

	desc, err := NewVMDescriptor("vm-rg", "vm1", vm)
	require.NoError(t, err)
	assert.Equal(t, testNicID, desc.PrimaryNICID)
}

func TestNewVMDescriptor_InvalidShapes(t *testing.T) {
	managedDisk := testVM("https://a.blob.core.windows.net/vhds/os.vhd", nil, testNicID)
	managedDisk.Properties.StorageProfile.OSDisk.Vhd = nil

	managedDataDisk := testVM("https://a.blob.core.windows.net/vhds/os.vhd", nil, testNicID)
	managedDataDisk.Properties.StorageProfile.DataDisks = []*armcompute.DataDisk{
		{Lun: to.Ptr(int32(0))},
	}

	noNic := testVM("https://a.blob.core.windows.net/vhds/os.vhd", nil)

	tests := []struct {
		name          string
		vm            *armcompute.VirtualMachine
		errorContains string
	}{
		{name: "nil vm", vm: nil, errorContains: "has no properties"},
		{name: "no properties", vm: &armcompute.VirtualMachine{}, errorContains: "has no properties"},
		{name: "managed os disk", vm: managedDisk, errorContains: "no unmanaged OS disk"},
		{name: "managed data disk", vm: managedDataDisk, errorContains: "data disk 0"},
		{name: "no nic", vm: noNic, errorContains: "has no network interface"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewVMDescriptor("vm-rg", "vm1", tt.vm)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}
