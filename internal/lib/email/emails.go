package email

// SendWelcomeEmail sends the post-signup welcome email.
func (c *Client) SendWelcomeEmail(to, name string) error {
	data := map[string]string{
		"UserName": name,
	}

	return c.SendEmail(
		to,
		"Welcome to Tradepost!",
		TemplateWelcome,
		data,
	)
}
