// Package config loads and validates client configuration files.
//
// A configuration file describes one client instance: base URL, timeout,
// default headers, resolution default and error-message overrides. YAML
// and JSON are both supported.
//
//	baseUrl: https://api.example.com
//	timeout: 5s
//	returnData: true
//	headers:
//	  X-App: storefront
//	errorMessages:
//	  status:
//	    404: "nothing here"
//	  timeoutError: "still waiting..."
//
// Usage:
//
//	cfg, err := config.Load("client.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if errs := config.Validate(cfg); len(errs) > 0 {
//	    for _, e := range errs {
//	        log.Println(e)
//	    }
//	    os.Exit(1)
//	}
//	opts, _ := cfg.Options()
//	client := apiclient.NewClient(opts...)
package config
