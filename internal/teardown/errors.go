package teardown

import "errors"

// ErrOwningGroupNotFound reports that no resource group in the subscription
// contains a storage account with the given name. The original sequence
// absorbed this condition silently and let the subsequent key fetch fail;
// here it is named so the log shows the root cause, but the key fetch is
// still attempted and its failure is what surfaces.
var ErrOwningGroupNotFound = errors.New("owning resource group not found for storage account")
