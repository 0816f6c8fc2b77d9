package responses

import "text/template"

// Templates use text/template on purpose: caller input is embedded verbatim.

const devicePingTemplate = `<?xml version='1.0' encoding='ISO-8859-1' ?><ping><cmds ping_version='{{.Version}}'></cmds><timestamp utc='{{.Timestamp}}' /></ping>`

const firmwareUpdateTemplate = `<?xml version='1.0' encoding='ISO-8859-1' ?><ping><cmds ping_version='{{.Version}}'><upgrade build='{{.Update.Build}}' url='{{.Update.URL}}' md5='{{.Update.MD5}}' /></cmds><timestamp utc='{{.Timestamp}}' /></ping>`

const loginDocument = `<?xml version="1.0" encoding="UTF-8" ?><object type="user" id="666">
    <name>Boxee User</name>
    <short_name>Boxee</short_name>
    <thumb>http://public-nicholasserra.s3.amazonaws.com/web/boxeeskull200.png</thumb>
    <thumb_small>http://public-nicholasserra.s3.amazonaws.com/web/boxeeskull78.png</thumb_small>
    <user_id>666</user_id>
    <user_display_name>Boxee User</user_display_name>
    <user_first_name>Boxee</user_first_name>
    <user_last_name>User</user_last_name>
    <country>US</country>
    <show_movie_library>1</show_movie_library>
</object>`

const featuredTemplate = `{{define "message"}}
        <message type="featured" score="0" referral="{{.Index}}" source="boxee">
            <timestamp>{{.Timestamp}}</timestamp>
            <description>[B][/B]</description>
            <object type="stream_video" id="stv_{{.Index}}">
                <name>[B][/B]</name>
                <url></url>
                <thumb>http://public-nicholasserra.s3.amazonaws.com/web/boxee/boxee-bg-{{.Index}}.png</thumb>
                <description></description>
            </object>
            <object type="user" id="nicholasserra">
                <name>nicholasserra</name>
                <short_name>nicholasserra</short_name>
                <thumb>http://public-nicholasserra.s3.amazonaws.com/web/boxeeskull200.png</thumb>
                <thumb_small>http://public-nicholasserra.s3.amazonaws.com/web/boxeeskull78.png</thumb_small>
                <user_id>nicholasserra</user_id>
                <user_display_name>nicholasserra</user_display_name>
                <user_first_name>Nicholas</user_first_name>
                <user_last_name>Serra</user_last_name>
                <show_movie_library>0</show_movie_library>
            </object>
        </message>
        {{end}}<?xml version="1.0" encoding="UTF-8"?><boxeefeed><timestamp>{{.Timestamp}}</timestamp><last>40</last>{{range .Messages}}{{template "message" .}}{{end}}</boxeefeed>`

const appIndexDocument = `<apps>
    <app>
        <id>nrd</id>
        <version>1.1</version>
        <name>Netflix</name>
        <platform>dlink.dsm380,intel.ce4100</platform>
        <description>Watch as many movies as you want! For $7.99 a month. (Ver 1.1)</description>
        <thumb>http://dir.boxee.tv/apps/netflix/thumb.png</thumb>
        <releasedate>1297711563</releasedate>
        <media>video</media>
        <copyright>Boxee</copyright>
        <email>support@boxee.tv</email>
        <type>native</type>
        <minversion>1.0.4</minversion>
        <repositoryid>tv.boxee</repositoryid>
        <country-allow>us gu vi pr as mp ca</country-allow>
        <signature-dlink.dsm380>` + appSignature + `</signature-dlink.dsm380>
        <signature-intel.ce4100>` + appSignature + `</signature-intel.ce4100>
    </app>
</apps>`

// appSignature is the vendor signature of the nrd 1.1 package, served as-is
const appSignature = "hZrXbDTsk4L5T9Cy676h/MsEf5uPCxnD+2frinKS/0bkwdv0NMQHGk/v+lADQuMObUaXR5Wglhg7vpUpUcnAhBavmkjqiTR7NsW3x2qc9KcoqpMxiPRYw4nHyNZXa3C9etvzUMrARTlVOzV+vZt5CY7lC3U4nrkgn5G0sC3Tw1g="

var (
	devicePingTmpl     = template.Must(template.New("device_ping").Parse(devicePingTemplate))
	firmwareUpdateTmpl = template.Must(template.New("firmware_update").Parse(firmwareUpdateTemplate))
	featuredTmpl       = template.Must(template.New("featured").Parse(featuredTemplate))
)
