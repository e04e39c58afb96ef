package news

// DefaultSources lists the configured crypto news feeds. Icons are the
// publishers' favicons, served alongside each article so frontends can
// badge items without chasing the origin site.
var DefaultSources = []Source{
	{
		Name: "CoinDesk",
		URL:  "https://www.coindesk.com/arc/outboundfeeds/rss/",
		Icon: "https://www.coindesk.com/favicon.ico",
	},
	{
		Name: "Cointelegraph",
		URL:  "https://cointelegraph.com/rss",
		Icon: "https://cointelegraph.com/favicon.ico",
	},
	{
		Name: "Decrypt",
		URL:  "https://decrypt.co/feed",
		Icon: "https://decrypt.co/favicon.ico",
	},
	{
		Name: "The Block",
		URL:  "https://www.theblock.co/rss.xml",
		Icon: "https://www.theblock.co/favicon.ico",
	},
	{
		Name: "Bitcoin Magazine",
		URL:  "https://bitcoinmagazine.com/feed",
		Icon: "https://bitcoinmagazine.com/favicon.ico",
	},
	{
		Name: "CryptoSlate",
		URL:  "https://cryptoslate.com/feed/",
		Icon: "https://cryptoslate.com/favicon.ico",
	},
}
