package billing

import (
	"github.com/Brysonmah/elitetips-2025/config"
	"github.com/Brysonmah/elitetips-2025/internal/infra/paystack"
)

var gateway *paystack.Client

// Init wires the Paystack client. Tests point it at a local stub server.
func Init(client *paystack.Client) {
	gateway = client
}

func getGateway() *paystack.Client {
	if gateway == nil {
		gateway = paystack.New(config.PAYSTACK_SECRET_KEY)
	}
	return gateway
}
