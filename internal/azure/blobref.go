package azure

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
)

// BlobRef identifies a blob by storage account, container, and blob name,
// as decomposed from a VHD URI.
type BlobRef struct {
	Account   string
	Container string
	Blob      string
}

// BlobRefError reports a VHD URI that does not match the expected
// https://{account}.blob.{suffix}/{container}/{blob} shape.
type BlobRefError struct {
	URI    string
	Reason string
}

func (e *BlobRefError) Error() string {
	return fmt.Sprintf("malformed VHD URI %q: %s", e.URI, e.Reason)
}

// ParseVHDURI decomposes a VHD URI into its blob reference. The storage
// account is the first DNS label of the host, the container the
// second-to-last path segment, and the blob name the last path segment.
func ParseVHDURI(raw string) (BlobRef, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return BlobRef{}, &BlobRefError{URI: raw, Reason: err.Error()}
	}
	if u.Host == "" {
		return BlobRef{}, &BlobRefError{URI: raw, Reason: "no host"}
	}

	account, _, found := strings.Cut(u.Host, ".")
	if !found || account == "" {
		return BlobRef{}, &BlobRefError{URI: raw, Reason: "host has no storage account label"}
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) < 2 || segments[len(segments)-1] == "" || segments[len(segments)-2] == "" {
		return BlobRef{}, &BlobRefError{URI: raw, Reason: "path has no container and blob segments"}
	}

	return BlobRef{
		Account:   account,
		Container: segments[len(segments)-2],
		Blob:      segments[len(segments)-1],
	}, nil
}

// ParseNicID extracts the owning resource group and interface name from a
// network interface resource ID.
func ParseNicID(id string) (group, name string, err error) {
	rid, err := arm.ParseResourceID(id)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse NIC resource ID %q: %w", id, err)
	}
	return rid.ResourceGroupName, rid.Name, nil
}
