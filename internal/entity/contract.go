package entity

// ContractData is the optional contract metadata attached to requests.
type ContractData struct {
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	ContractID  string `json:"contractId"`
}

// UploadResult is the durable location of a stored contract file.
type UploadResult struct {
	DownloadURL string
	SHA         string
}

// SanitizeFilename replaces every byte outside [A-Za-z0-9._-] with an
// underscore so the name is safe inside a repository path.
func SanitizeFilename(name string) string {
	out := make([]byte, len(name))

	for i := 0; i < len(name); i++ {
		c := name[i]

		switch {
		case c >= 'a' && c <= 'z',
			c >= 'A' && c <= 'Z',
			c >= '0' && c <= '9',
			c == '.', c == '_', c == '-':
			out[i] = c
		default:
			out[i] = '_'
		}
	}

	return string(out)
}
