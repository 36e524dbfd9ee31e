package rbac

type EnforceRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type PolicyResponse struct {
	Resource string   `json:"resource"`
	Action   string   `json:"action"`
	Roles    []string `json:"roles"`
}

type FieldsResponse struct {
	Role     string              `json:"role"`
	Wildcard bool                `json:"wildcard"`
	Fields   []string            `json:"fields"`
	Records  map[string][]string `json:"records"`
}
