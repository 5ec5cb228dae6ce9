package wordlist

// embeddedWordlist is the bundled default word list used when no
// --wordlist path is given, grounded on maxvaer/dirfuzz's embedded-default
// behavior in internal/wordlist.Load (the teacher's own data file was not
// present in the retrieved pack, so this list reconstructs a dictionary
// of common web paths, directories and backup-file name patterns of
// comparable shape and size).
const embeddedWordlist = `admin
admin-copy
admin.bak
admin.old
admin.orig
admin.save
admin01
admin02
admin1
admin2
admin2023
admin2024
admin2025
admin3
admin_backup
admin_bak
admin_copy
admin_dev
admin_new
admin_old
admin_prod
admin_staging
admin_temp
admin_test
admin_v1
admin_v2
api
api-copy
api.bak
api.old
api.orig
api.save
api01
api02
api1
api2
api2023
api2024
api2025
api3
api_backup
api_bak
api_copy
api_dev
api_new
api_old
api_prod
api_staging
api_temp
api_test
api_v1
api_v2
assets
assets-copy
assets.bak
assets.old
assets.orig
assets.save
assets01
assets02
assets1
assets2
assets2023
assets2024
assets2025
assets3
assets_backup
assets_bak
assets_copy
assets_dev
assets_new
assets_old
assets_prod
assets_staging
assets_temp
assets_test
assets_v1
assets_v2
backup
backup-copy
backup.bak
backup.old
backup.orig
backup.save
backup01
backup02
backup1
backup2
backup2023
backup2024
backup2025
backup3
backup_backup
backup_bak
backup_copy
backup_dev
backup_new
backup_old
backup_prod
backup_staging
backup_temp
backup_test
backup_v1
backup_v2
bin
bin-copy
bin.bak
bin.old
bin.orig
bin.save
bin01
bin02
bin1
bin2
bin2023
bin2024
bin2025
bin3
bin_backup
bin_bak
bin_copy
bin_dev
bin_new
bin_old
bin_prod
bin_staging
bin_temp
bin_test
bin_v1
bin_v2
build
build-copy
build.bak
build.old
build.orig
build.save
build01
build02
build1
build2
build2023
build2024
build2025
build3
build_backup
build_bak
build_copy
build_dev
build_new
build_old
build_prod
build_staging
build_temp
build_test
build_v1
build_v2
cgi-bin
cgi-bin-copy
cgi-bin.bak
cgi-bin.old
cgi-bin.orig
cgi-bin.save
cgi-bin01
cgi-bin02
cgi-bin1
cgi-bin2
cgi-bin2023
cgi-bin2024
cgi-bin2025
cgi-bin3
cgi-bin_backup
cgi-bin_bak
cgi-bin_copy
cgi-bin_dev
cgi-bin_new
cgi-bin_old
cgi-bin_prod
cgi-bin_staging
cgi-bin_temp
cgi-bin_test
cgi-bin_v1
cgi-bin_v2
config
config-copy
config.bak
config.old
config.orig
config.save
config01
config02
config1
config2
config2023
config2024
config2025
config3
config_backup
config_bak
config_copy
config_dev
config_new
config_old
config_prod
config_staging
config_temp
config_test
config_v1
config_v2
configs
configs-copy
configs.bak
configs.old
configs.orig
configs.save
configs01
configs02
configs1
configs2
configs2023
configs2024
configs2025
configs3
configs_backup
configs_bak
configs_copy
configs_dev
configs_new
configs_old
configs_prod
configs_staging
configs_temp
configs_test
configs_v1
configs_v2
css
css-copy
css.bak
css.old
css.orig
css.save
css01
css02
css1
css2
css2023
css2024
css2025
css3
css_backup
css_bak
css_copy
css_dev
css_new
css_old
css_prod
css_staging
css_temp
css_test
css_v1
css_v2
data
data-copy
data.bak
data.old
data.orig
data.save
data01
data02
data1
data2
data2023
data2024
data2025
data3
data_backup
data_bak
data_copy
data_dev
data_new
data_old
data_prod
data_staging
data_temp
data_test
data_v1
data_v2
database
database-copy
database.bak
database.old
database.orig
database.save
database01
database02
database1
database2
database2023
database2024
database2025
database3
database_backup
database_bak
database_copy
database_dev
database_new
database_old
database_prod
database_staging
database_temp
database_test
database_v1
database_v2
db
db-copy
db.bak
db.old
db.orig
db.save
db01
db02
db1
db2
db2023
db2024
db2025
db3
db_backup
db_bak
db_copy
db_dev
db_new
db_old
db_prod
db_staging
db_temp
db_test
db_v1
db_v2
debug
debug-copy
debug.bak
debug.old
debug.orig
debug.save
debug01
debug02
debug1
debug2
debug2023
debug2024
debug2025
debug3
debug_backup
debug_bak
debug_copy
debug_dev
debug_new
debug_old
debug_prod
debug_staging
debug_temp
debug_test
debug_v1
debug_v2
dev
dev-copy
dev.bak
dev.old
dev.orig
dev.save
dev01
dev02
dev1
dev2
dev2023
dev2024
dev2025
dev3
dev_backup
dev_bak
dev_copy
dev_dev
dev_new
dev_old
dev_prod
dev_staging
dev_temp
dev_test
dev_v1
dev_v2
dist
dist-copy
dist.bak
dist.old
dist.orig
dist.save
dist01
dist02
dist1
dist2
dist2023
dist2024
dist2025
dist3
dist_backup
dist_bak
dist_copy
dist_dev
dist_new
dist_old
dist_prod
dist_staging
dist_temp
dist_test
dist_v1
dist_v2
download
download-copy
download.bak
download.old
download.orig
download.save
download01
download02
download1
download2
download2023
download2024
download2025
download3
download_backup
download_bak
download_copy
download_dev
download_new
download_old
download_prod
download_staging
download_temp
download_test
download_v1
download_v2
downloads
downloads-copy
downloads.bak
downloads.old
downloads.orig
downloads.save
downloads01
downloads02
downloads1
downloads2
downloads2023
downloads2024
downloads2025
downloads3
downloads_backup
downloads_bak
downloads_copy
downloads_dev
downloads_new
downloads_old
downloads_prod
downloads_staging
downloads_temp
downloads_test
downloads_v1
downloads_v2
error
error-copy
error.bak
error.old
error.orig
error.save
error01
error02
error1
error2
error2023
error2024
error2025
error3
error_backup
error_bak
error_copy
error_dev
error_new
error_old
error_prod
error_staging
error_temp
error_test
error_v1
error_v2
errors
errors-copy
errors.bak
errors.old
errors.orig
errors.save
errors01
errors02
errors1
errors2
errors2023
errors2024
errors2025
errors3
errors_backup
errors_bak
errors_copy
errors_dev
errors_new
errors_old
errors_prod
errors_staging
errors_temp
errors_test
errors_v1
errors_v2
etc
etc-copy
etc.bak
etc.old
etc.orig
etc.save
etc01
etc02
etc1
etc2
etc2023
etc2024
etc2025
etc3
etc_backup
etc_bak
etc_copy
etc_dev
etc_new
etc_old
etc_prod
etc_staging
etc_temp
etc_test
etc_v1
etc_v2
home
home-copy
home.bak
home.old
home.orig
home.save
home01
home02
home1
home2
home2023
home2024
home2025
home3
home_backup
home_bak
home_copy
home_dev
home_new
home_old
home_prod
home_staging
home_temp
home_test
home_v1
home_v2
images
images-copy
images.bak
images.old
images.orig
images.save
images01
images02
images1
images2
images2023
images2024
images2025
images3
images_backup
images_bak
images_copy
images_dev
images_new
images_old
images_prod
images_staging
images_temp
images_test
images_v1
images_v2
img
img-copy
img.bak
img.old
img.orig
img.save
img01
img02
img1
img2
img2023
img2024
img2025
img3
img_backup
img_bak
img_copy
img_dev
img_new
img_old
img_prod
img_staging
img_temp
img_test
img_v1
img_v2
inc
inc-copy
inc.bak
inc.old
inc.orig
inc.save
inc01
inc02
inc1
inc2
inc2023
inc2024
inc2025
inc3
inc_backup
inc_bak
inc_copy
inc_dev
inc_new
inc_old
inc_prod
inc_staging
inc_temp
inc_test
inc_v1
inc_v2
include
include-copy
include.bak
include.old
include.orig
include.save
include01
include02
include1
include2
include2023
include2024
include2025
include3
include_backup
include_bak
include_copy
include_dev
include_new
include_old
include_prod
include_staging
include_temp
include_test
include_v1
include_v2
includes
includes-copy
includes.bak
includes.old
includes.orig
includes.save
includes01
includes02
includes1
includes2
includes2023
includes2024
includes2025
includes3
includes_backup
includes_bak
includes_copy
includes_dev
includes_new
includes_old
includes_prod
includes_staging
includes_temp
includes_test
includes_v1
includes_v2
js
js-copy
js.bak
js.old
js.orig
js.save
js01
js02
js1
js2
js2023
js2024
js2025
js3
js_backup
js_bak
js_copy
js_dev
js_new
js_old
js_prod
js_staging
js_temp
js_test
js_v1
js_v2
lib
lib-copy
lib.bak
lib.old
lib.orig
lib.save
lib01
lib02
lib1
lib2
lib2023
lib2024
lib2025
lib3
lib_backup
lib_bak
lib_copy
lib_dev
lib_new
lib_old
lib_prod
lib_staging
lib_temp
lib_test
lib_v1
lib_v2
libs
libs-copy
libs.bak
libs.old
libs.orig
libs.save
libs01
libs02
libs1
libs2
libs2023
libs2024
libs2025
libs3
libs_backup
libs_bak
libs_copy
libs_dev
libs_new
libs_old
libs_prod
libs_staging
libs_temp
libs_test
libs_v1
libs_v2
log
log-copy
log.bak
log.old
log.orig
log.save
log01
log02
log1
log2
log2023
log2024
log2025
log3
log_backup
log_bak
log_copy
log_dev
log_new
log_old
log_prod
log_staging
log_temp
log_test
log_v1
log_v2
login
login-copy
login.bak
login.old
login.orig
login.save
login01
login02
login1
login2
login2023
login2024
login2025
login3
login_backup
login_bak
login_copy
login_dev
login_new
login_old
login_prod
login_staging
login_temp
login_test
login_v1
login_v2
logs
logs-copy
logs.bak
logs.old
logs.orig
logs.save
logs01
logs02
logs1
logs2
logs2023
logs2024
logs2025
logs3
logs_backup
logs_bak
logs_copy
logs_dev
logs_new
logs_old
logs_prod
logs_staging
logs_temp
logs_test
logs_v1
logs_v2
new
new-copy
new.bak
new.old
new.orig
new.save
new01
new02
new1
new2
new2023
new2024
new2025
new3
new_backup
new_bak
new_copy
new_dev
new_new
new_old
new_prod
new_staging
new_temp
new_test
new_v1
new_v2
node_modules
node_modules-copy
node_modules.bak
node_modules.old
node_modules.orig
node_modules.save
node_modules01
node_modules02
node_modules1
node_modules2
node_modules2023
node_modules2024
node_modules2025
node_modules3
node_modules_backup
node_modules_bak
node_modules_copy
node_modules_dev
node_modules_new
node_modules_old
node_modules_prod
node_modules_staging
node_modules_temp
node_modules_test
node_modules_v1
node_modules_v2
old
old-copy
old.bak
old.old
old.orig
old.save
old01
old02
old1
old2
old2023
old2024
old2025
old3
old_backup
old_bak
old_copy
old_dev
old_new
old_old
old_prod
old_staging
old_temp
old_test
old_v1
old_v2
phpmyadmin
phpmyadmin-copy
phpmyadmin01
phpmyadmin02
phpmyadmin1
phpmyadmin2
phpmyadmin3
phpmyadmin_backup
phpmyadmin_bak
phpmyadmin_copy
phpmyadmin_new
phpmyadmin_old
phpmyadmin_v1
phpmyadmin_v2
private
private-copy
private.bak
private.old
private.orig
private.save
private01
private02
private1
private2
private2023
private2024
private2025
private3
private_backup
private_bak
private_copy
private_dev
private_new
private_old
private_prod
private_staging
private_temp
private_test
private_v1
private_v2
prod
prod-copy
prod.bak
prod.old
prod.orig
prod.save
prod01
prod02
prod1
prod2
prod2023
prod2024
prod2025
prod3
prod_backup
prod_bak
prod_copy
prod_dev
prod_new
prod_old
prod_prod
prod_staging
prod_temp
prod_test
prod_v1
prod_v2
production
production-copy
production.bak
production.old
production.orig
production.save
production01
production02
production1
production2
production2023
production2024
production2025
production3
production_backup
production_bak
production_copy
production_dev
production_new
production_old
production_prod
production_staging
production_temp
production_test
production_v1
production_v2
public
public-copy
public.bak
public.old
public.orig
public.save
public01
public02
public1
public2
public2023
public2024
public2025
public3
public_backup
public_bak
public_copy
public_dev
public_new
public_old
public_prod
public_staging
public_temp
public_test
public_v1
public_v2
scripts
scripts-copy
scripts.bak
scripts.old
scripts.orig
scripts.save
scripts01
scripts02
scripts1
scripts2
scripts2023
scripts2024
scripts2025
scripts3
scripts_backup
scripts_bak
scripts_copy
scripts_dev
scripts_new
scripts_old
scripts_prod
scripts_staging
scripts_temp
scripts_test
scripts_v1
scripts_v2
secret
secret-copy
secret.bak
secret.old
secret.orig
secret.save
secret01
secret02
secret1
secret2
secret2023
secret2024
secret2025
secret3
secret_backup
secret_bak
secret_copy
secret_dev
secret_new
secret_old
secret_prod
secret_staging
secret_temp
secret_test
secret_v1
secret_v2
secrets
secrets-copy
secrets.bak
secrets.old
secrets.orig
secrets.save
secrets01
secrets02
secrets1
secrets2
secrets2023
secrets2024
secrets2025
secrets3
secrets_backup
secrets_bak
secrets_copy
secrets_dev
secrets_new
secrets_old
secrets_prod
secrets_staging
secrets_temp
secrets_test
secrets_v1
secrets_v2
source
source-copy
source.bak
source.old
source.orig
source.save
source01
source02
source1
source2
source2023
source2024
source2025
source3
source_backup
source_bak
source_copy
source_dev
source_new
source_old
source_prod
source_staging
source_temp
source_test
source_v1
source_v2
sql
sql-copy
sql.bak
sql.old
sql.orig
sql.save
sql01
sql02
sql1
sql2
sql2023
sql2024
sql2025
sql3
sql_backup
sql_bak
sql_copy
sql_dev
sql_new
sql_old
sql_prod
sql_staging
sql_temp
sql_test
sql_v1
sql_v2
src
src-copy
src.bak
src.old
src.orig
src.save
src01
src02
src1
src2
src2023
src2024
src2025
src3
src_backup
src_bak
src_copy
src_dev
src_new
src_old
src_prod
src_staging
src_temp
src_test
src_v1
src_v2
staging
staging-copy
staging.bak
staging.old
staging.orig
staging.save
staging01
staging02
staging1
staging2
staging2023
staging2024
staging2025
staging3
staging_backup
staging_bak
staging_copy
staging_dev
staging_new
staging_old
staging_prod
staging_staging
staging_temp
staging_test
staging_v1
staging_v2
static
static-copy
static.bak
static.old
static.orig
static.save
static01
static02
static1
static2
static2023
static2024
static2025
static3
static_backup
static_bak
static_copy
static_dev
static_new
static_old
static_prod
static_staging
static_temp
static_test
static_v1
static_v2
temp
temp-copy
temp.bak
temp.old
temp.orig
temp.save
temp01
temp02
temp1
temp2
temp2023
temp2024
temp2025
temp3
temp_backup
temp_bak
temp_copy
temp_dev
temp_new
temp_old
temp_prod
temp_staging
temp_temp
temp_test
temp_v1
temp_v2
test
test-copy
test.bak
test.old
test.orig
test.save
test01
test02
test1
test2
test2023
test2024
test2025
test3
test_backup
test_bak
test_copy
test_dev
test_new
test_old
test_prod
test_staging
test_temp
test_test
test_v1
test_v2
tests
tests-copy
tests.bak
tests.old
tests.orig
tests.save
tests01
tests02
tests1
tests2
tests2023
tests2024
tests2025
tests3
tests_backup
tests_bak
tests_copy
tests_dev
tests_new
tests_old
tests_prod
tests_staging
tests_temp
tests_test
tests_v1
tests_v2
tmp
tmp-copy
tmp.bak
tmp.old
tmp.orig
tmp.save
tmp01
tmp02
tmp1
tmp2
tmp2023
tmp2024
tmp2025
tmp3
tmp_backup
tmp_bak
tmp_copy
tmp_dev
tmp_new
tmp_old
tmp_prod
tmp_staging
tmp_temp
tmp_test
tmp_v1
tmp_v2
upload
upload-copy
upload.bak
upload.old
upload.orig
upload.save
upload01
upload02
upload1
upload2
upload2023
upload2024
upload2025
upload3
upload_backup
upload_bak
upload_copy
upload_dev
upload_new
upload_old
upload_prod
upload_staging
upload_temp
upload_test
upload_v1
upload_v2
uploads
uploads-copy
uploads.bak
uploads.old
uploads.orig
uploads.save
uploads01
uploads02
uploads1
uploads2
uploads2023
uploads2024
uploads2025
uploads3
uploads_backup
uploads_bak
uploads_copy
uploads_dev
uploads_new
uploads_old
uploads_prod
uploads_staging
uploads_temp
uploads_test
uploads_v1
uploads_v2
user
user-copy
user.bak
user.old
user.orig
user.save
user01
user02
user1
user2
user2023
user2024
user2025
user3
user_backup
user_bak
user_copy
user_dev
user_new
user_old
user_prod
user_staging
user_temp
user_test
user_v1
user_v2
users
users-copy
users.bak
users.old
users.orig
users.save
users01
users02
users1
users2
users2023
users2024
users2025
users3
users_backup
users_bak
users_copy
users_dev
users_new
users_old
users_prod
users_staging
users_temp
users_test
users_v1
users_v2
var
var-copy
var.bak
var.old
var.orig
var.save
var01
var02
var1
var2
var2023
var2024
var2025
var3
var_backup
var_bak
var_copy
var_dev
var_new
var_old
var_prod
var_staging
var_temp
var_test
var_v1
var_v2
vendor
vendor-copy
vendor.bak
vendor.old
vendor.orig
vendor.save
vendor01
vendor02
vendor1
vendor2
vendor2023
vendor2024
vendor2025
vendor3
vendor_backup
vendor_bak
vendor_copy
vendor_dev
vendor_new
vendor_old
vendor_prod
vendor_staging
vendor_temp
vendor_test
vendor_v1
vendor_v2
wp-admin
wp-admin-copy
wp-admin.bak
wp-admin.old
wp-admin.orig
wp-admin.save
wp-admin01
wp-admin02
wp-admin1
wp-admin2
wp-admin2023
wp-admin2024
wp-admin2025
wp-admin3
wp-admin_backup
wp-admin_bak
wp-admin_copy
wp-admin_dev
wp-admin_new
wp-admin_old
wp-admin_prod
wp-admin_staging
wp-admin_temp
wp-admin_test
wp-admin_v1
wp-admin_v2
wp-content
wp-content-copy
wp-content.bak
wp-content.old
wp-content.orig
wp-content.save
wp-content01
wp-content02
wp-content1
wp-content2
wp-content2023
wp-content2024
wp-content2025
wp-content3
wp-content_backup
wp-content_bak
wp-content_copy
wp-content_dev
wp-content_new
wp-content_old
wp-content_prod
wp-content_staging
wp-content_temp
wp-content_test
wp-content_v1
wp-content_v2
wp-includes
wp-includes-copy
wp-includes.bak
wp-includes.old
wp-includes.orig
wp-includes.save
wp-includes01
wp-includes02
wp-includes1
wp-includes2
wp-includes2023
wp-includes2024
wp-includes2025
wp-includes3
wp-includes_backup
wp-includes_bak
wp-includes_copy
wp-includes_dev
wp-includes_new
wp-includes_old
wp-includes_prod
wp-includes_staging
wp-includes_temp
wp-includes_test
wp-includes_v1
wp-includes_v2`
