// Package catalookup provides an embeddable Go client for the product catalog
// assistant: code lookup over hierarchical Order 1057 codes and keyword search
// over product names.
//
// # Loading a catalog
//
//	client, err := catalookup.New(ctx, catalookup.WithFile("data/catalog.json"))
//	client, err := catalookup.New(ctx, catalookup.WithURL("https://vdm.ru/data/catalog.json"))
//	client, err := catalookup.New(ctx, catalookup.WithValkey("localhost:6379", "", ""))
//
// The catalog is loaded once by New and never refreshed.
//
// # Querying
//
//	res := client.Query(ctx, "1.2.5")
//	switch res.Kind {
//	case catalookup.KindExactMatch:
//	    fmt.Println(res.Record.ArticleNumber)
//	case catalookup.KindPartialMatches, catalookup.KindSimilarCodes, catalookup.KindTextMatches:
//	    for _, r := range res.Matches { fmt.Println(r.Code, r.OfficialName) }
//	}
//	fmt.Println(res.Reply.PlainText())
package catalookup
