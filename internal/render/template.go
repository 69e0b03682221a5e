package render

// pageTemplate is the full vehicle detail page. It mirrors the rest of
// the dealership site: Bootstrap 5 from CDN, dark navbar, red accents,
// fixed CTA bar on mobile.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">

  <title>{{.FullTitle}} for Sale in {{.Dealer.City}} {{.Dealer.State}} {{.Dealer.Zip}} | {{.Dealer.Name}}</title>
  <meta name="description" content="{{.FullTitle}} for sale at {{.Dealer.Name}} in {{.Dealer.City}}, {{.Dealer.State}} {{.Dealer.Zip}}. {{.MilesStr}}, {{.PriceStr}}. VIN {{.VIN}}.">
  <meta name="keywords" content="{{.FullTitle}}, used {{.Make}} {{.Model}} {{.Dealer.City}} {{.Dealer.State}}, used cars {{.Dealer.Zip}}, {{.Dealer.Name}}">
  <link rel="canonical" href="{{.PageURL}}">

  <meta property="og:type" content="website">
  <meta property="og:title" content="{{.FullTitle}} for Sale | {{.Dealer.Name}}">
  <meta property="og:description" content="{{.FullTitle}} — {{.MilesStr}} — {{.PriceStr}}. Available in {{.Dealer.City}}, {{.Dealer.State}}.">
  <meta property="og:url" content="{{.PageURL}}">
  <meta property="og:site_name" content="{{.Dealer.Name}}">

  <link rel="icon" type="image/png" href="{{.AssetPrefix}}assets/favicon.png">

  <script type="application/ld+json">
{{.Schema}}
  </script>

  <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css" rel="stylesheet">
  <style>
    body { background: #f1f1f1; }
    .vdp-titlebar { background: #fff; border: 1px solid #ddd; border-radius: 0 0 10px 10px; padding: 1rem; }
    .vdp-price { font-weight: 900; font-size: 1.8rem; color: #0a0a0a; }
    .vdp-media { background: #fff; border: 1px solid #ddd; border-radius: 10px; overflow: hidden; }
    .vdp-carousel-img { max-height: 460px; object-fit: cover; background: #000; }
    .vdp-thumb { border: 1px solid #ddd; border-radius: 8px; padding: 0; overflow: hidden; width: 78px; height: 58px; background: #fff; }
    .vdp-thumb img { width: 100%; height: 100%; object-fit: cover; display: block; }
    .vdp-placeholder { min-height: 320px; display: flex; align-items: center; justify-content: center; padding: 2rem; background: #fff; }
    .vdp-specs { background: #fff; border: 1px solid #ddd; border-radius: 10px; padding: 1rem; }
    .vdp-specs dt { color: #6c757d; font-weight: 700; font-size: .78rem; letter-spacing: .08em; text-transform: uppercase; }
    .vdp-specs dd { margin-bottom: .75rem; font-weight: 600; }
    .vdp-cta-bar { position: fixed; left: 0; right: 0; bottom: 0; z-index: 1050; background: rgba(17,17,17,.96); }
    .vdp-cta-bar a { color: #fff; text-decoration: none; font-weight: 800; font-size: .82rem; text-transform: uppercase; display: block; padding: .7rem .4rem; text-align: center; }
    @media (min-width: 992px) { .vdp-cta-bar { display: none; } }
  </style>
</head>

<body>
  <header class="sticky-top">
    <nav class="navbar navbar-expand-lg navbar-dark py-2" style="background:#111111;">
      <div class="container">
        <a class="navbar-brand fw-bold" href="{{.AssetPrefix}}index.html">{{.Dealer.Name}}</a>
        <ul class="navbar-nav ms-auto flex-row gap-3">
          <li class="nav-item"><a class="nav-link active" href="{{.AssetPrefix}}inventory.html">Inventory</a></li>
          <li class="nav-item"><a class="nav-link" href="{{.AssetPrefix}}financing.html">Financing</a></li>
          <li class="nav-item"><a class="nav-link" href="{{.AssetPrefix}}contact.html">Contact</a></li>
        </ul>
      </div>
    </nav>
  </header>

  <main class="container my-3 my-lg-4">
    <div class="vdp-titlebar">
      <div class="d-flex flex-column flex-lg-row align-items-lg-center justify-content-between gap-3">
        <div>
          {{if .Badge}}<span class="badge bg-danger px-3 py-2">{{.Badge}}</span>{{end}}
          <h1 class="h3 mb-1" style="font-weight:900;">{{.Title}}{{if .Trim}} <span class="text-muted fw-semibold">{{.Trim}}</span>{{end}}</h1>
          <div class="text-muted small">VIN: {{if .VIN}}{{.VIN}}{{else}}—{{end}} &nbsp;•&nbsp; Stock: {{.Stock}}</div>
        </div>
        <div class="text-lg-end">
          <div class="text-muted text-uppercase small">Our Price</div>
          <div class="vdp-price">{{.PriceStr}}</div>
          <div class="small text-muted">{{.MilesStr}}</div>
        </div>
      </div>
    </div>

    <div class="row g-3 g-lg-4 mt-0 mt-lg-1">
      <div class="col-lg-7">
        <div class="vdp-media">
{{if .Images}}          <div id="vdpCarousel" class="carousel slide" data-bs-ride="carousel">
            <div class="carousel-inner">
{{range .Images}}              <div class="carousel-item{{if .Active}} active{{end}}"><img src="{{.Src}}" class="d-block w-100 vdp-carousel-img" alt="{{$.FullTitle}} photo {{.Number}}" loading="lazy"></div>
{{end}}            </div>
            <button class="carousel-control-prev" type="button" data-bs-target="#vdpCarousel" data-bs-slide="prev" aria-label="Previous photo">
              <span class="carousel-control-prev-icon" aria-hidden="true"></span>
            </button>
            <button class="carousel-control-next" type="button" data-bs-target="#vdpCarousel" data-bs-slide="next" aria-label="Next photo">
              <span class="carousel-control-next-icon" aria-hidden="true"></span>
            </button>
          </div>
          <div class="d-flex flex-wrap gap-2 p-2">
{{range .Images}}            <button type="button" class="vdp-thumb" data-bs-target="#vdpCarousel" data-bs-slide-to="{{.Index}}" aria-label="Go to photo {{.Number}}"><img src="{{.Src}}" alt="{{$.FullTitle}} thumbnail {{.Number}}" loading="lazy"></button>
{{end}}          </div>
{{else}}          <div class="vdp-placeholder">
            <div class="text-center text-muted">Photo Coming Soon</div>
          </div>
{{end}}        </div>
      </div>
      <div class="col-lg-5">
        <div class="vdp-specs">
          <div class="d-grid gap-2 mb-3">
            {{if .Dealer.Phone}}<a href="tel:{{.Dealer.Phone}}" class="btn btn-dark fw-bold">Call {{.Dealer.Phone}}</a>{{end}}
            <a href="{{.AssetPrefix}}financing.html?vehicle={{.FullTitle}}&amp;vin={{.VIN}}#applications" class="btn btn-danger fw-bold">Apply for Financing</a>
            <a href="{{.AssetPrefix}}contact.html?vehicle={{.FullTitle}}&amp;vin={{.VIN}}#appointment" class="btn btn-outline-dark fw-bold">Inquiry / Schedule Test Drive</a>
          </div>
          <dl class="row mb-0">
            <div class="col-6"><dt>Year</dt><dd>{{.Year}}</dd></div>
            <div class="col-6"><dt>Make</dt><dd>{{.Make}}</dd></div>
            <div class="col-6"><dt>Model</dt><dd>{{.Model}}</dd></div>
            <div class="col-6"><dt>Trim</dt><dd>{{if .Trim}}{{.Trim}}{{else}}—{{end}}</dd></div>
            <div class="col-6"><dt>Mileage</dt><dd>{{.MilesShort}} mi</dd></div>
            <div class="col-6"><dt>Transmission</dt><dd>{{.Trans}}</dd></div>
            <div class="col-6"><dt>Engine</dt><dd>{{.Engine}}</dd></div>
            <div class="col-6"><dt>Drive</dt><dd>{{.Drive}}</dd></div>
            <div class="col-6"><dt>Fuel</dt><dd>{{.Fuel}}</dd></div>
            <div class="col-6"><dt>Type</dt><dd>{{.BodyType}}</dd></div>
            <div class="col-6"><dt>Exterior</dt><dd>{{.ExtColor}}</dd></div>
            <div class="col-6"><dt>Interior</dt><dd>{{.IntColor}}</dd></div>
          </dl>
        </div>
      </div>
    </div>

    <div class="row g-3 mt-1">
      <div class="col-lg-7">
        <div class="vdp-specs">
          <h2 class="h5 fw-bold">Vehicle Description</h2>
{{if .Description}}          {{.Description}}
{{else}}          <div class="text-muted">Description coming soon.</div>
{{end}}        </div>
      </div>
      <div class="col-lg-5">
        <div class="vdp-specs">
          <h2 class="h5 fw-bold">Features &amp; Options</h2>
{{if .Features}}          <ul class="list-group list-group-flush">
{{range .Features}}            <li class="list-group-item">{{.}}</li>
{{end}}          </ul>
{{else}}          <div class="text-muted">No options listed. Ask us for details.</div>
{{end}}        </div>
      </div>
    </div>
  </main>

  <div class="vdp-cta-bar d-lg-none">
    <div class="container">
      <div class="row g-0">
        {{if .Dealer.Phone}}<div class="col-4"><a href="tel:{{.Dealer.Phone}}">Call</a></div>{{end}}
        <div class="col-4"><a href="{{.AssetPrefix}}financing.html">Finance</a></div>
        <div class="col-4"><a href="{{.AssetPrefix}}inventory.html">Inventory</a></div>
      </div>
    </div>
  </div>

  <script src="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/js/bootstrap.bundle.min.js"></script>
</body>
</html>
`
