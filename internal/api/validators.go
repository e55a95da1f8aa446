package api

import (
	"fmt"

	"github.com/badoux/checkmail"

	"github.com/brightpixel/studio-api/internal/entity"
)

func validateInvoiceRequest(req entity.InvoiceRequest) error {
	if req.ClientName == "" || req.ClientEmail == "" || req.ContractID == "" || req.PackageKey == "" {
		return fmt.Errorf("%w: clientName, clientEmail, contractId and packageKey are required",
			entity.ErrIncorrectRequestBody)
	}

	err := checkmail.ValidateFormat(req.ClientEmail)
	if err != nil {
		return fmt.Errorf("%w: invalid clientEmail: %s", entity.ErrIncorrectRequestBody, req.ClientEmail)
	}

	return nil
}

func validateUploadParams(filename, content string) error {
	if filename == "" || content == "" {
		return fmt.Errorf("%w: filename and content are required", entity.ErrIncorrectRequestBody)
	}

	return nil
}
