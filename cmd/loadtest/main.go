package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// Result 记录单次请求的 HTTP 结果，便于聚合统计。
type Result struct {
	Status int
	Body   string
	Err    error
}

// 并发打结账接口，验证条件 UPDATE 扣库存/扣款不会超卖、不会透支。
func main() {
	baseURL := flag.String("base", "http://localhost:8080", "server base url")
	productID := flag.Int("product", 1, "product id")
	buyerID := flag.Int("buyer", 1, "buyer user id")
	n := flag.Int("n", 100, "total checkout requests")
	concurrency := flag.Int("c", 50, "max concurrency")
	flag.Parse()

	client := &http.Client{Timeout: 5 * time.Second}

	fmt.Printf("start oversell test: product=%d buyer=%d n=%d concurrency=%d\n",
		*productID, *buyerID, *n, *concurrency)
	results := runCheckout(client, *baseURL, *productID, *buyerID, *n, *concurrency)
	printSummary("oversell", results)

	// 剩余库存以服务端为准
	stock, err := getStock(client, *baseURL, *productID)
	if err != nil {
		fmt.Println("stock check err:", err)
	} else {
		fmt.Println("final stock:", stock)
	}
}

func runCheckout(client *http.Client, baseURL string, productID, buyerID, n, concurrency int) []Result {
	type item struct {
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}
	type req struct {
		BuyerID int    `json:"buyer_id"`
		Items   []item `json:"items"`
	}

	results := make([]Result, n)
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			body, _ := json.Marshal(req{
				BuyerID: buyerID,
				Items:   []item{{ProductID: productID, Quantity: 1}},
			})
			resp, err := client.Post(baseURL+"/api/orders", "application/json", bytes.NewReader(body))
			if err != nil {
				results[idx] = Result{Err: err}
				return
			}
			defer resp.Body.Close()
			b, _ := io.ReadAll(resp.Body)
			results[idx] = Result{Status: resp.StatusCode, Body: string(b)}
		}(i)
	}
	wg.Wait()
	return results
}

func getStock(client *http.Client, baseURL string, productID int) (int64, error) {
	resp, err := client.Get(fmt.Sprintf("%s/api/products/%d", baseURL, productID))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var out struct {
		Data struct {
			Stock int64 `json:"stock"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, err
	}
	return out.Data.Stock, nil
}

func printSummary(name string, results []Result) {
	counts := map[int]int{}
	errs := 0
	for _, r := range results {
		if r.Err != nil {
			errs++
			continue
		}
		counts[r.Status]++
	}
	fmt.Printf("[%s] status counts: %v, transport errors: %d\n", name, counts, errs)
}
