package httpserver

const indexHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>meterreader gateway</title>
</head>
<body>
<h1>meterreader gateway</h1>
<ul>
<li><code>POST /api/token</code> &mdash; <code>{"username": "...", "password": "..."}</code></li>
<li><code>POST /api/readings</code> &mdash; bearer token required;
<code>{"readings": [{"customerId": 1, "value": 12000, "time": "2024-03-01T12:00:00Z"}]}</code></li>
<li><a href="/healthz">/healthz</a></li>
<li><a href="/metrics">/metrics</a></li>
</ul>
</body>
</html>
`
