package publish

import "html/template"

var postTemplate = template.Must(template.New("post").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<meta name="description" content="{{.Excerpt}}">
<link rel="stylesheet" href="/css/blog.css">
</head>
<body>
<article class="blog-post" data-slug="{{.Slug}}">
<header>
<p class="post-category">{{.Category}}</p>
<h1>{{.Title}}</h1>
<p class="post-meta">By {{.Author}} · {{.ReadTime}}</p>
{{if .HeroImage}}<img class="post-hero" src="{{.HeroImage}}" alt="{{.Title}}">{{end}}
</header>
<div class="post-content">
{{.Body}}
</div>
</article>
<section id="comments" data-post="{{.Slug}}">
<h2>Comments</h2>
<div id="comment-list"></div>
</section>
<script src="/js/comments.js"></script>
</body>
</html>
`))

var listingTemplate = template.Must(template.New("listing").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Blog</title>
<link rel="stylesheet" href="/css/blog.css">
</head>
<body>
<main class="blog-index">
<h1>Latest Posts</h1>
<div class="post-grid">
{{range .}}<article class="post-card" data-slug="{{.Slug}}">
{{if .HeroImage}}<img src="{{.HeroImage}}" alt="{{.Title}}">{{end}}
<p class="post-category">{{.Category}}</p>
<h2><a href="/blog/{{.Slug}}.html">{{.Title}}</a></h2>
<p class="post-excerpt">{{.Excerpt}}</p>
<p class="post-meta">{{.Author}} · {{.ReadTime}}</p>
</article>
{{end}}</div>
</main>
</body>
</html>
`))
