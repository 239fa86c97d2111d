package integration_test

import (
	"encoding/json"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"golang.org/x/net/publicsuffix"
	"io/ioutil"
	"log"
	"net/http"
	"net/http/cookiejar"
	"strings"
)

var _ = Describe("In headers api", func() {

	It("root route returns welcome message", func() {
		resp, message := get(baseUrl+"/", nil)
		Expect(resp.StatusCode).To(Equal(200))
		Expect(resp.Header.Get("Content-Type")).To(Equal("application/json"))
		Expect(string(message)).To(Equal(`{"message":"Welcome to the Headers API"}`))
	})

	It("headers route echoes request headers", func() {
		resp, message := get(baseUrl+"/headers", map[string]string{"X-Test": "1"})
		Expect(resp.StatusCode).To(Equal(200))

		headers := unmarshalHeaders(message)
		Expect(headers).To(HaveKeyWithValue("x-test", "1"))
		Expect(headers).To(HaveKeyWithValue("host", strings.TrimPrefix(baseUrl, "http://")))
	})

	It("headers route returns exactly the sent headers", func() {
		resp, message := get(baseUrl+"/headers", map[string]string{
			"User-Agent": "integration-agent",
			"Accept":     "application/json",
		})
		Expect(resp.StatusCode).To(Equal(200))

		headers := unmarshalHeaders(message)
		Expect(headers).To(HaveLen(4))
		Expect(headers).To(HaveKeyWithValue("user-agent", "integration-agent"))
		Expect(headers).To(HaveKeyWithValue("accept", "application/json"))
		Expect(headers).To(HaveKeyWithValue("accept-encoding", "gzip"))
		Expect(headers).To(HaveKey("host"))
	})

	It("headers route answers without custom headers", func() {
		resp, message := get(baseUrl+"/headers", nil)
		Expect(resp.StatusCode).To(Equal(200))
		Expect(unmarshalHeaders(message)).To(HaveKey("host"))
	})

	It("repeated requests produce identical bodies", func() {
		_, first := get(baseUrl+"/headers", map[string]string{"X-Test": "1"})
		for i := 0; i < 3; i++ {
			_, next := get(baseUrl+"/headers", map[string]string{"X-Test": "1"})
			Expect(next).To(Equal(first))
		}
	})

	It("request id filter tags responses only", func() {
		resp, message := get(baseUrl+"/headers", nil)
		Expect(resp.Header.Get("X-Request-Id")).NotTo(BeEmpty())
		Expect(unmarshalHeaders(message)).NotTo(HaveKey("x-request-id"))
	})

	It("configured routers use their own message and filters", func() {
		resp, message := get(baseUrl+"/greeting", nil)
		Expect(resp.StatusCode).To(Equal(200))
		Expect(resp.Header.Get("X-Correlation-Id")).NotTo(BeEmpty())
		Expect(string(message)).To(Equal(`{"message":"Hello from integration"}`))
	})

	It("undefined path is not found", func() {
		resp, _ := get(baseUrl+"/undefined", nil)
		Expect(resp.StatusCode).To(Equal(404))
	})

	It("unsupported method is not allowed", func() {
		resp, err := buildClient().Post(baseUrl+"/headers", "application/json", strings.NewReader("{}"))
		Expect(err).NotTo(HaveOccurred())
		_ = resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(405))
	})
})

func unmarshalHeaders(message []byte) map[string]string {
	payload := make(map[string]map[string]string)
	if err := json.Unmarshal(message, &payload); err != nil {
		Fail(err.Error())
	}
	return payload["headers"]
}

func get(url string, headers map[string]string) (*http.Response, []byte) {
	request, err := http.NewRequest("GET", url, nil)
	if err != nil {
		Fail(err.Error())
	}
	for name, value := range headers {
		request.Header.Set(name, value)
	}
	resp, err := buildClient().Do(request)
	if err != nil {
		Fail(err.Error())
	}
	message, err := ioutil.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		Fail(err.Error())
	}
	return resp, message
}

func buildClient() *http.Client {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		log.Fatal(err)
	}
	return &http.Client{Jar: jar}
}
