package catalog

// builtin is the shipped template table. Callers get copies through Builtin.
var builtin = []Category{
	{
		ID:          "vuln",
		Name:        "🔓 Vulnerability Discovery",
		Description: "Find potentially vulnerable parameters and pages",
		Dorks: []Dork{
			{
				Name:        "SQL Injection Points",
				Query:       `inurl:index.php?id= OR inurl:product.php?id= OR inurl:page.php?id=`,
				Description: "Common SQL injection vulnerable parameters",
			},
			{
				Name:        "Local File Inclusion (LFI)",
				Query:       `inurl:/view.php?page= OR inurl:/include.php?file= OR inurl:/load.php?path=`,
				Description: "Potential LFI vulnerabilities",
			},
			{
				Name:        "Cross-Site Scripting (XSS)",
				Query:       `inurl:"search.php?q=" OR inurl:"/?search=" OR inurl:"/?s="`,
				Description: "Search parameters potentially vulnerable to XSS",
			},
			{
				Name:        "Open Redirects",
				Query:       `inurl:redirect.php?url= OR inurl:out.php?link= OR inurl:goto.php?target=`,
				Description: "Open redirect vulnerabilities",
			},
			{
				Name:        "File Upload Endpoints",
				Query:       `inurl:/upload/ filetype:php OR inurl:/upload.php intitle:upload`,
				Description: "File upload pages that could be exploited",
			},
			{
				Name:        "SQL Error Messages",
				Query:       `intext:"SQL syntax error" OR intext:"mysql_fetch_array()" OR intext:"You have an error in your SQL syntax"`,
				Description: "Pages revealing SQL errors",
			},
		},
	},
	{
		ID:          "creds",
		Name:        "🔑 Credential & Secret Exposure",
		Description: "Find exposed passwords, API keys, and sensitive credentials",
		Dorks: []Dork{
			{
				Name:        "Database Passwords",
				Query:       `intext:"DB_PASSWORD" filetype:env OR intext:"DB_USERNAME" filetype:env`,
				Description: "Exposed .env files with database credentials",
			},
			{
				Name:        "AWS Keys",
				Query:       `filetype:json intext:"aws_access_key_id" OR filetype:json intext:"aws_secret_access_key"`,
				Description: "Exposed AWS access keys",
			},
			{
				Name:        "SSH Private Keys",
				Query:       `intitle:"Index of" id_rsa OR intitle:"Index of" id_dsa`,
				Description: "Exposed SSH private keys",
			},
			{
				Name:        "Password Files",
				Query:       `filetype:txt intext:password intext:username OR filetype:log intext:password`,
				Description: "Text files containing passwords",
			},
			{
				Name:        "Database Dumps",
				Query:       `filetype:sql intext:"INSERT INTO" intext:password OR filetype:sql "MySQL dump"`,
				Description: "SQL database dumps with credentials",
			},
			{
				Name:        "API Keys",
				Query:       `filetype:json intext:api_key OR filetype:json intext:"API KEY"`,
				Description: "JSON files with API keys",
			},
			{
				Name:        "GitHub Secrets",
				Query:       `site:github.com intext:access_token OR site:github.com intext:api_key`,
				Description: "Exposed tokens on GitHub",
			},
			{
				Name:        "Pastebin Leaks",
				Query:       `site:pastebin.com intext:password OR site:pastebin.com intext:api_key`,
				Description: "Credentials leaked on Pastebin",
			},
		},
	},
	{
		ID:          "cloud",
		Name:        "☁️ Cloud & Infrastructure Exposure",
		Description: "Find exposed cloud services and infrastructure",
		Dorks: []Dork{
			{
				Name:        "AWS S3 Buckets",
				Query:       `site:s3.amazonaws.com "index of" OR site:s3.amazonaws.com intext:secret`,
				Description: "Public S3 buckets",
			},
			{
				Name:        "Jenkins Dashboards",
				Query:       `inurl:/jenkins intext:"Dashboard" OR intitle:"Jenkins" intext:"Build Queue"`,
				Description: "Jenkins CI/CD dashboards",
			},
			{
				Name:        "Grafana Panels",
				Query:       `intitle:"Grafana" inurl:/login OR intitle:"Grafana" inurl:/dashboard`,
				Description: "Grafana monitoring dashboards",
			},
			{
				Name:        "Kibana",
				Query:       `inurl:/kibana intext:"Login" OR intitle:"Kibana"`,
				Description: "Kibana analytics interfaces",
			},
			{
				Name:        "Docker Configurations",
				Query:       `filetype:yml intext:docker-compose OR inurl:/docker/ intitle:"Index of"`,
				Description: "Exposed Docker configurations",
			},
			{
				Name:        "Kubernetes Dashboards",
				Query:       `intitle:"Kubernetes Dashboard" inurl:/login OR intitle:"Google Kubernetes Engine"`,
				Description: "Kubernetes admin panels",
			},
			{
				Name:        "Portainer (Docker UI)",
				Query:       `inurl:portainer intext:"Login" OR intitle:"Portainer"`,
				Description: "Docker management interfaces",
			},
			{
				Name:        "Azure Configs",
				Query:       `filetype:config intext:azure OR filetype:log intext:azure_storage`,
				Description: "Azure configuration exposures",
			},
		},
	},
	{
		ID:          "admin",
		Name:        "👑 Admin Panels & Backdoors",
		Description: "Find administrative interfaces and potential backdoors",
		Dorks: []Dork{
			{
				Name:        "WordPress Admin",
				Query:       `inurl:/wp-admin OR inurl:/wp-login.php intitle:login`,
				Description: "WordPress admin login pages",
			},
			{
				Name:        "Generic Admin Panels",
				Query:       `intitle:"Admin Login" OR intitle:"Administration" inurl:admin`,
				Description: "Generic admin login pages",
			},
			{
				Name:        "phpMyAdmin",
				Query:       `intitle:phpMyAdmin inurl:main.php OR inurl:phpmyadmin/index.php`,
				Description: "Database management interfaces",
			},
			{
				Name:        "Web Shells",
				Query:       `intitle:"shell" OR intitle:"wso shell" OR intitle:"r57shell" filetype:php`,
				Description: "Potentially malicious web shells",
			},
			{
				Name:        "Tomcat Manager",
				Query:       `intitle:"Tomcat Manager" OR inurl:/manager/html`,
				Description: "Tomcat admin interfaces",
			},
			{
				Name:        "Router Configs",
				Query:       `intitle:"RouterOS" OR intitle:"MikroTik" inurl:webfig`,
				Description: "Router admin panels",
			},
		},
	},
	{
		ID:          "files",
		Name:        "📄 Sensitive Files & Documents",
		Description: "Find exposed documents, backups, and configuration files",
		Dorks: []Dork{
			{
				Name:        "Database Backups",
				Query:       `intitle:"index of" /backup ext:sql | ext:zip | ext:tar`,
				Description: "Database backup files",
			},
			{
				Name:        "Configuration Files",
				Query:       `filetype:conf OR filetype:config OR filetype:ini intext:password`,
				Description: "Configuration files with passwords",
			},
			{
				Name:        "Excel Files with Credentials",
				Query:       `filetype:xls intext:password OR filetype:xlsx intext:login`,
				Description: "Spreadsheets containing credentials",
			},
			{
				Name:        "PDF Reports",
				Query:       `filetype:pdf "confidential" OR "internal use only" OR "not for distribution"`,
				Description: "Confidential PDF documents",
			},
			{
				Name:        "Log Files",
				Query:       `filetype:log intext:password OR filetype:log intext:error`,
				Description: "Log files with potential credentials",
			},
			{
				Name:        "Backup Files",
				Query:       `ext:bak OR ext:old OR ext:backup OR ext:~`,
				Description: "Backup file extensions",
			},
			{
				Name:        "Network Configs",
				Query:       `filetype:cfg router OR filetype:conf network`,
				Description: "Network device configurations",
			},
		},
	},
	{
		ID:          "iot",
		Name:        "📷 IoT & Camera Streams",
		Description: "Find exposed IoT devices and camera feeds",
		Dorks: []Dork{
			{
				Name:        "IP Cameras",
				Query:       `inurl:"view/view.shtml" OR inurl:"viewerframe?mode="`,
				Description: "Live camera feeds",
			},
			{
				Name:        "Webcams",
				Query:       `intitle:"webcam" OR intitle:"live view" inurl:axis-cgi`,
				Description: "Public webcams",
			},
			{
				Name:        "Network Printers",
				Query:       `intitle:"hp LaserJet" OR intitle:"Kyocera" inurl:wcd`,
				Description: "Printer control panels",
			},
			{
				Name:        "DVR Systems",
				Query:       `intitle:"DVR" inurl:login OR intitle:"Network Video Recorder"`,
				Description: "Digital video recorder interfaces",
			},
		},
	},
	{
		ID:          "dirs",
		Name:        "📂 Open Directories",
		Description: "Find exposed directory listings",
		Dorks: []Dork{
			{
				Name:        "Basic Open Directories",
				Query:       `intitle:"index of" -inurl:list -inurl:download`,
				Description: "Simple directory listings",
			},
			{
				Name:        "Parent Directories",
				Query:       `intitle:"index of /" parent directory`,
				Description: "Parent directory access",
			},
			{
				Name:        "Backup Directories",
				Query:       `intitle:"index of" backup OR intitle:"index of" bak`,
				Description: "Backup folders",
			},
			{
				Name:        "Admin Directories",
				Query:       `intitle:"index of" admin OR intitle:"index of" administrator`,
				Description: "Admin folder listings",
			},
		},
	},
	{
		ID:          "osint",
		Name:        "🕵️ OSINT & Intelligence",
		Description: "Open source intelligence gathering",
		Dorks: []Dork{
			{
				Name:        "Email Addresses",
				Query:       `filetype:xls intext:"@gmail.com" OR filetype:xls intext:"@yahoo.com"`,
				Description: "Email lists in spreadsheets",
			},
			{
				Name:        "Employee Information",
				Query:       `site:linkedin.com "works at" AND "company name"`,
				Description: "Find employees on LinkedIn",
			},
			{
				Name:        "Document Metadata",
				Query:       `filetype:pdf OR filetype:docx intext:"Author:" OR intext:"Last modified by"`,
				Description: "Documents with metadata",
			},
			{
				Name:        "Resumes/CVs",
				Query:       `filetype:pdf "curriculum vitae" OR "resume" site:.gov`,
				Description: "Public resumes on government sites",
			},
		},
	},
}
