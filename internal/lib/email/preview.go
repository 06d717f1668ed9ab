package email

// PreviewData holds sample data per template, enough to render each one
// outside a real send. Keep the keys in sync with the template variables.
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"UserName": "Ada",
	},
}
